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

// PgxEntryRepository persists the ordered entry collection in the "savings"
// state slot.
type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepository {
	return &PgxEntryRepository{BaseRepository{pool: pool}}
}

var _ portsrepo.EntryRepository = (*PgxEntryRepository)(nil)

func toModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		ID:             d.EntryID,
		Amount:         d.Amount,
		Description:    d.Concept,
		Note:           d.Note,
		Date:           d.Date,
		Currency:       string(d.Currency),
		OriginalAmount: d.OriginalAmount,
		ExchangeRate:   d.ExchangeRate,
	}
}

func toDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:        m.ID,
		Amount:         m.Amount,
		Concept:        m.Description,
		Note:           m.Note,
		Date:           m.Date,
		Currency:       domain.Currency(m.Currency),
		OriginalAmount: m.OriginalAmount,
		ExchangeRate:   m.ExchangeRate,
	}
}

// FindEntries returns the stored collection in persisted order. An unwritten
// slot yields an empty collection, not an error.
func (r *PgxEntryRepository) FindEntries(ctx context.Context) ([]domain.Entry, error) {
	var stored []models.Entry
	if err := r.getState(ctx, models.KeySavings, &stored); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Entry{}, nil
		}
		return nil, err
	}

	entries := make([]domain.Entry, len(stored))
	for i, m := range stored {
		entries[i] = toDomainEntry(m)
	}
	return entries, nil
}

// SaveEntries rewrites the whole collection in one write.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.Entry) error {
	stored := make([]models.Entry, len(entries))
	for i, e := range entries {
		stored[i] = toModelEntry(e)
	}
	return r.setState(ctx, models.KeySavings, stored)
}
