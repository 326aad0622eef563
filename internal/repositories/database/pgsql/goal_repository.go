package pgsql

import (
	"context"
	"errors"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxGoalRepository persists the single optional goal in the "goal" slot.
type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository{pool: pool}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

// FindGoal returns (nil, nil) when no goal is set; absence is a normal state.
func (r *PgxGoalRepository) FindGoal(ctx context.Context) (*domain.Goal, error) {
	var stored models.Goal
	if err := r.getState(ctx, models.KeyGoal, &stored); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Goal{
		Target:      stored.Target,
		Description: stored.Description,
		Deadline:    stored.Deadline,
	}, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	return r.setState(ctx, models.KeyGoal, models.Goal{
		Target:      goal.Target,
		Description: goal.Description,
		Deadline:    goal.Deadline,
	})
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context) error {
	return r.deleteState(ctx, models.KeyGoal)
}
