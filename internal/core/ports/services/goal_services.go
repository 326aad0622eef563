package services

import (
	"context"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
)

// GoalSvcFacade exposes the goal tracker operations.
type GoalSvcFacade interface {
	// GetGoal returns (nil, nil) when no goal is set.
	GetGoal(ctx context.Context) (*domain.Goal, error)
	// SaveGoal replaces any existing goal. Changing the target or description
	// resets the milestone flag set.
	SaveGoal(ctx context.Context, req dto.SaveGoalRequest) (*domain.Goal, error)
	// DeleteGoal clears the goal and resets the milestone flag set.
	DeleteGoal(ctx context.Context) error
}
