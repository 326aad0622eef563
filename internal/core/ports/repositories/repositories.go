// Package repositories defines the persistence interfaces the services
// depend on. State lives in four independently stored slots; each repository
// reads and rewrites its slot as a whole, which is what makes multi-entry
// writes (transfers) atomic for readers.
package repositories

import (
	"context"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
)

// EntryRepository persists the ordered entry collection.
type EntryRepository interface {
	// FindEntries returns the stored collection in its persisted order, or an
	// empty slice when nothing has been stored yet.
	FindEntries(ctx context.Context) ([]domain.Entry, error)
	// SaveEntries replaces the whole collection in a single write.
	SaveEntries(ctx context.Context, entries []domain.Entry) error
}

// ConceptRepository persists the ordered concept name list.
type ConceptRepository interface {
	// FindConcepts returns the stored list; apperrors.ErrNotFound when the
	// slot has never been written (the service seeds defaults then).
	FindConcepts(ctx context.Context) ([]string, error)
	SaveConcepts(ctx context.Context, concepts []string) error
}

// GoalRepository persists the single optional goal.
type GoalRepository interface {
	// FindGoal returns (nil, nil) when no goal is set.
	FindGoal(ctx context.Context) (*domain.Goal, error)
	SaveGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context) error
}

// MilestoneRepository persists the fired-milestone flag set.
type MilestoneRepository interface {
	// FindFlags returns an empty map when the slot has never been written.
	FindFlags(ctx context.Context) (map[string]bool, error)
	SaveFlags(ctx context.Context, flags map[string]bool) error
	// Reset clears every flag, re-arming all milestones.
	Reset(ctx context.Context) error
}

// RepositoryProvider bundles all repositories for service wiring.
type RepositoryProvider struct {
	EntryRepo     EntryRepository
	ConceptRepo   ConceptRepository
	GoalRepo      GoalRepository
	MilestoneRepo MilestoneRepository
}
