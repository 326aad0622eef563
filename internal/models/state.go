// Package models holds the persisted representations of the application
// state slots. JSON field names are part of the stored format and must stay
// stable across releases.
package models

import "github.com/shopspring/decimal"

// State slot keys. Each slot is written atomically as a whole.
const (
	KeySavings    = "savings"
	KeyGoal       = "goal"
	KeyMilestones = "notifiedMilestones"
	KeyConcepts   = "appConcepts"
)

// Entry is the stored form of a savings entry.
type Entry struct {
	ID             string           `json:"id"`
	Amount         decimal.Decimal  `json:"amount"`
	Description    string           `json:"description"`
	Note           string           `json:"note,omitempty"`
	Date           string           `json:"date"`
	Currency       string           `json:"currency"`
	OriginalAmount decimal.Decimal  `json:"originalAmount"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
}

// Goal is the stored form of the savings goal.
type Goal struct {
	Target      decimal.Decimal `json:"target"`
	Description string          `json:"description"`
	Deadline    string          `json:"deadline,omitempty"`
}
