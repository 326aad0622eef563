package pgsql

import (
	"context"

	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxConceptRepository persists the ordered concept list in the
// "appConcepts" state slot.
type PgxConceptRepository struct {
	BaseRepository
}

func newPgxConceptRepository(pool *pgxpool.Pool) portsrepo.ConceptRepository {
	return &PgxConceptRepository{BaseRepository{pool: pool}}
}

var _ portsrepo.ConceptRepository = (*PgxConceptRepository)(nil)

// FindConcepts returns the stored list, or apperrors.ErrNotFound when the
// slot has never been written so the service can seed defaults.
func (r *PgxConceptRepository) FindConcepts(ctx context.Context) ([]string, error) {
	var concepts []string
	if err := r.getState(ctx, models.KeyConcepts, &concepts); err != nil {
		return nil, err
	}
	return concepts, nil
}

func (r *PgxConceptRepository) SaveConcepts(ctx context.Context, concepts []string) error {
	return r.setState(ctx, models.KeyConcepts, concepts)
}
