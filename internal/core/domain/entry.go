package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency identifies the currency an entry was originally recorded in.
// EUR is the reference currency; every Entry.Amount is expressed in it.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// DayLayout is the calendar-day format entries are keyed by. Dates carry no
// time component; comparisons are exact day comparisons.
const DayLayout = "2006-01-02"

// Entry represents a single dated, signed monetary record.
// Positive amounts are inflows, negative amounts outflows.
type Entry struct {
	EntryID        string           `json:"id"`
	Amount         decimal.Decimal  `json:"amount"` // Signed, always in EUR
	Concept        string           `json:"description"`
	Note           string           `json:"note,omitempty"`
	Date           string           `json:"date"` // DayLayout
	Currency       Currency         `json:"currency"`
	OriginalAmount decimal.Decimal  `json:"originalAmount"` // Signed, in the native currency
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
}

// ParseDay parses a DayLayout date string into a local-midnight time.Time.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.Local)
}

// FormatDay renders t as a DayLayout calendar-day string in local time.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}
