package dto

import (
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Entry kinds accepted at the input boundary. The service signs the amounts.
const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

// CreateEntryRequest defines the data needed to record an income or expense.
// Amount is the positive magnitude in the entry's native currency.
type CreateEntryRequest struct {
	Type         string           `json:"type" binding:"required,oneof=income expense"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	Concept      string           `json:"concept" binding:"required"`
	Note         string           `json:"note"`
	Date         string           `json:"date" binding:"required"`
	Currency     domain.Currency  `json:"currency" binding:"required,oneof=EUR USD"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"` // Required for USD, forbidden for EUR
}

// UpdateEntryRequest replaces every field of an existing entry; the entry ID
// comes from the URL and is preserved.
type UpdateEntryRequest struct {
	Type         string           `json:"type" binding:"required,oneof=income expense"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	Concept      string           `json:"concept" binding:"required"`
	Note         string           `json:"note"`
	Date         string           `json:"date" binding:"required"`
	Currency     domain.Currency  `json:"currency" binding:"required,oneof=EUR USD"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
}

// CreateTransferRequest defines a movement of Amount from SourceConcept to
// DestinationConcept on Date. It produces two entries.
type CreateTransferRequest struct {
	Amount             decimal.Decimal  `json:"amount" binding:"required"`
	SourceConcept      string           `json:"sourceConcept" binding:"required"`
	DestinationConcept string           `json:"destinationConcept" binding:"required"`
	Note               string           `json:"note"`
	Date               string           `json:"date" binding:"required"`
	Currency           domain.Currency  `json:"currency" binding:"required,oneof=EUR USD"`
	ExchangeRate       *decimal.Decimal `json:"exchangeRate"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Date string `form:"date"` // Optional exact-day filter
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID        string           `json:"id"`
	Amount         decimal.Decimal  `json:"amount"`
	Concept        string           `json:"concept"`
	Note           string           `json:"note,omitempty"`
	Date           string           `json:"date"`
	Currency       domain.Currency  `json:"currency"`
	OriginalAmount decimal.Decimal  `json:"originalAmount"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
}

// EntryMutationResponse wraps a stored entry together with any milestone
// notifications the mutation fired.
type EntryMutationResponse struct {
	Entry         *EntryResponse         `json:"entry,omitempty"`
	Notifications []NotificationResponse `json:"notifications"`
}

// TransferResponse wraps the two entries a transfer produced.
type TransferResponse struct {
	Entries       []EntryResponse        `json:"entries"`
	Notifications []NotificationResponse `json:"notifications"`
}

// ListEntriesResponse wraps the list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:        e.EntryID,
		Amount:         e.Amount,
		Concept:        e.Concept,
		Note:           e.Note,
		Date:           e.Date,
		Currency:       e.Currency,
		OriginalAmount: e.OriginalAmount,
		ExchangeRate:   e.ExchangeRate,
	}
}

// ToEntryListResponse converts a slice of domain.Entry to EntryResponse DTOs.
func ToEntryListResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}
