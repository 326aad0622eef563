package dto

import (
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SaveGoalRequest replaces the active goal wholesale.
type SaveGoalRequest struct {
	Target      decimal.Decimal `json:"target" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Deadline    string          `json:"deadline"` // Optional, YYYY-MM-DD
}

// GoalResponse defines the data returned for the active goal, including the
// derived progress figures.
type GoalResponse struct {
	Target          decimal.Decimal `json:"target"`
	Description     string          `json:"description"`
	Deadline        string          `json:"deadline,omitempty"`
	TotalSaved      decimal.Decimal `json:"totalSaved"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	DaysRemaining   *int            `json:"daysRemaining,omitempty"`
}

// GoalStatusResponse wraps the goal (null when unset) and any milestone
// notifications fired by the request that produced it.
type GoalStatusResponse struct {
	Goal          *GoalResponse          `json:"goal"`
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}

// ToGoalResponse converts a domain.Goal plus the current total into a
// GoalResponse evaluated at now.
func ToGoalResponse(g *domain.Goal, totalSaved decimal.Decimal, now time.Time) *GoalResponse {
	if g == nil {
		return nil
	}
	resp := &GoalResponse{
		Target:          g.Target,
		Description:     g.Description,
		Deadline:        g.Deadline,
		TotalSaved:      totalSaved,
		ProgressPercent: g.ProgressPercent(totalSaved),
	}
	if days, ok := g.DaysRemaining(now); ok {
		resp.DaysRemaining = &days
	}
	return resp
}
