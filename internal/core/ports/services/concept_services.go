package services

import "context"

// ConceptSvcFacade exposes the concept registry operations. Mutations return
// the updated ordered list.
type ConceptSvcFacade interface {
	ListConcepts(ctx context.Context) ([]string, error)
	AddConcept(ctx context.Context, name string) ([]string, error)
	// RenameConcept also rewrites every stored entry referencing oldName.
	RenameConcept(ctx context.Context, oldName, newName string) ([]string, error)
	// DeleteConcept also reassigns every stored entry referencing name to the
	// sentinel concept.
	DeleteConcept(ctx context.Context, name string) ([]string, error)
	ReorderConcepts(ctx context.Context, fromIndex, toIndex int) ([]string, error)
}
