package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"

	"github.com/shopspring/decimal"
)

// goalService implements the GoalSvcFacade interface.
type goalService struct {
	BaseService
	goalRepo      portsrepo.GoalRepository
	milestoneRepo portsrepo.MilestoneRepository
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepository, milestoneRepo portsrepo.MilestoneRepository) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo, milestoneRepo: milestoneRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) GetGoal(ctx context.Context) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoal(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goal")
		return nil, err
	}
	return goal, nil
}

func (s *goalService) SaveGoal(ctx context.Context, req dto.SaveGoalRequest) (*domain.Goal, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: goal description cannot be empty", apperrors.ErrValidation)
	}
	if !req.Target.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: goal target must be positive", apperrors.ErrValidation)
	}
	if req.Deadline != "" {
		if _, err := domain.ParseDay(req.Deadline); err != nil {
			return nil, fmt.Errorf("%w: deadline must be in YYYY-MM-DD format", apperrors.ErrValidation)
		}
	}

	existing, err := s.goalRepo.FindGoal(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load existing goal")
		return nil, err
	}

	goal := domain.Goal{
		Target:      req.Target,
		Description: description,
		Deadline:    req.Deadline,
	}

	// A materially different goal re-arms every milestone. Deadline-only
	// edits keep the fired flags.
	if existing == nil || !existing.Target.Equal(goal.Target) || existing.Description != goal.Description {
		if err := s.milestoneRepo.Reset(ctx); err != nil {
			s.LogError(ctx, err, "Failed to reset milestone flags")
			return nil, err
		}
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal")
		return nil, err
	}

	s.LogInfo(ctx, "Goal saved", slog.String("description", goal.Description))
	return &goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context) error {
	if err := s.goalRepo.DeleteGoal(ctx); err != nil {
		s.LogError(ctx, err, "Failed to delete goal")
		return err
	}
	if err := s.milestoneRepo.Reset(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset milestone flags after goal delete")
		return err
	}
	s.LogInfo(ctx, "Goal deleted")
	return nil
}
