package pgsql

import (
	"context"
	"errors"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxMilestoneRepository persists the fired-milestone flags in the
// "notifiedMilestones" state slot.
type PgxMilestoneRepository struct {
	BaseRepository
}

func newPgxMilestoneRepository(pool *pgxpool.Pool) portsrepo.MilestoneRepository {
	return &PgxMilestoneRepository{BaseRepository{pool: pool}}
}

var _ portsrepo.MilestoneRepository = (*PgxMilestoneRepository)(nil)

// FindFlags returns an empty map for an unwritten slot.
func (r *PgxMilestoneRepository) FindFlags(ctx context.Context) (map[string]bool, error) {
	var flags map[string]bool
	if err := r.getState(ctx, models.KeyMilestones, &flags); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return map[string]bool{}, nil
		}
		return nil, err
	}
	if flags == nil {
		flags = map[string]bool{}
	}
	return flags, nil
}

func (r *PgxMilestoneRepository) SaveFlags(ctx context.Context, flags map[string]bool) error {
	return r.setState(ctx, models.KeyMilestones, flags)
}

// Reset clears every flag, re-arming all milestones for the next goal.
func (r *PgxMilestoneRepository) Reset(ctx context.Context) error {
	return r.setState(ctx, models.KeyMilestones, map[string]bool{})
}
