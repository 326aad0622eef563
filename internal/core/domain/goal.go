package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the single active savings goal. At most one exists at a time; a new
// save replaces it wholesale and no history is kept.
type Goal struct {
	Target      decimal.Decimal `json:"target"` // Strictly positive
	Description string          `json:"description"`
	Deadline    string          `json:"deadline,omitempty"` // DayLayout, empty when unset
}

// ProgressPercent returns totalSaved/target*100, or zero for a non-positive
// target. The value is deliberately not clamped: milestone evaluation needs
// the raw figure, display layers clamp to [0,100] themselves.
func (g Goal) ProgressPercent(totalSaved decimal.Decimal) decimal.Decimal {
	if !g.Target.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return totalSaved.Div(g.Target).Mul(decimal.NewFromInt(100))
}

// DaysRemaining returns the whole-day count until the deadline, negative when
// overdue, and false when no deadline is set or it cannot be parsed. Both
// ends are calendar days so partial-day rounding cannot occur.
func (g Goal) DaysRemaining(today time.Time) (int, bool) {
	if g.Deadline == "" {
		return 0, false
	}
	deadline, err := time.Parse(DayLayout, g.Deadline)
	if err != nil {
		return 0, false
	}
	day, err := time.Parse(DayLayout, FormatDay(today))
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(deadline.Sub(day).Hours() / 24)), true
}
