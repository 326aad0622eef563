package dto

// CreateConceptRequest defines the data needed to add a concept.
type CreateConceptRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameConceptRequest defines the new name for an existing concept.
type RenameConceptRequest struct {
	NewName string `json:"newName" binding:"required"`
}

// ReorderConceptsRequest moves the concept at FromIndex to ToIndex.
// Pointers distinguish a provided zero index from an omitted field.
type ReorderConceptsRequest struct {
	FromIndex *int `json:"fromIndex" binding:"required"`
	ToIndex   *int `json:"toIndex" binding:"required"`
}

// ConceptListResponse wraps the ordered concept list.
type ConceptListResponse struct {
	Concepts []string `json:"concepts"`
}
