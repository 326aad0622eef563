package services

import (
	"context"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
)

// EntrySvcFacade exposes the entry store operations.
type EntrySvcFacade interface {
	// ListEntries returns entries most-recent-first, optionally filtered to a
	// single calendar day (empty date means no filter).
	ListEntries(ctx context.Context, date string) ([]domain.Entry, error)
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Entry, error)
	// CreateTransfer atomically records the debit and credit legs of a
	// movement between two concepts.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) ([]domain.Entry, error)
	// UpdateEntry replaces the entry with the given ID. A missing ID is a
	// no-op and returns (nil, nil), tolerating stale references.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)
	// DeleteEntry removes the entry with the given ID; missing IDs are no-ops.
	DeleteEntry(ctx context.Context, entryID string) error
}
