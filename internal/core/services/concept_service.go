package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
)

// conceptService implements the ConceptSvcFacade interface. It owns the
// ordered registry and the entry-rewriting side effects of rename/delete.
type conceptService struct {
	BaseService
	conceptRepo portsrepo.ConceptRepository
	entryRepo   portsrepo.EntryRepository
}

// NewConceptService creates a new concept service.
func NewConceptService(conceptRepo portsrepo.ConceptRepository, entryRepo portsrepo.EntryRepository) portssvc.ConceptSvcFacade {
	return &conceptService{conceptRepo: conceptRepo, entryRepo: entryRepo}
}

var _ portssvc.ConceptSvcFacade = (*conceptService)(nil)

// loadOrSeed returns the stored registry, seeding the default list on first
// use.
func (s *conceptService) loadOrSeed(ctx context.Context) ([]string, error) {
	concepts, err := s.conceptRepo.FindConcepts(ctx)
	if err == nil {
		return concepts, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load concepts")
		return nil, err
	}

	seeded := make([]string, len(domain.DefaultConcepts))
	copy(seeded, domain.DefaultConcepts)
	if err := s.conceptRepo.SaveConcepts(ctx, seeded); err != nil {
		s.LogError(ctx, err, "Failed to seed default concepts")
		return nil, err
	}
	s.LogInfo(ctx, "Concept registry seeded with defaults")
	return seeded, nil
}

func (s *conceptService) ListConcepts(ctx context.Context) ([]string, error) {
	return s.loadOrSeed(ctx)
}

func (s *conceptService) AddConcept(ctx context.Context, name string) ([]string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: concept name cannot be empty", apperrors.ErrValidation)
	}

	concepts, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	if indexOfFold(concepts, trimmed) >= 0 {
		return nil, fmt.Errorf("%w: concept %q already exists", apperrors.ErrDuplicate, trimmed)
	}

	// New concepts slot in just before the sentinel so it stays last.
	if i := indexOf(concepts, domain.SentinelConcept); i >= 0 {
		concepts = append(concepts[:i], append([]string{trimmed}, concepts[i:]...)...)
	} else {
		concepts = append(concepts, trimmed)
	}

	if err := s.conceptRepo.SaveConcepts(ctx, concepts); err != nil {
		s.LogError(ctx, err, "Failed to save concepts", slog.String("concept", trimmed))
		return nil, err
	}
	s.LogInfo(ctx, "Concept added", slog.String("concept", trimmed))
	return concepts, nil
}

func (s *conceptService) RenameConcept(ctx context.Context, oldName, newName string) ([]string, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: concept name cannot be empty", apperrors.ErrValidation)
	}
	if oldName == domain.SentinelConcept || trimmed == domain.SentinelConcept {
		return nil, fmt.Errorf("%w: the %q concept cannot be renamed or taken", apperrors.ErrValidation, domain.SentinelConcept)
	}

	concepts, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	pos := indexOf(concepts, oldName)
	if pos < 0 {
		return nil, fmt.Errorf("%w: concept %q", apperrors.ErrNotFound, oldName)
	}
	if !strings.EqualFold(oldName, trimmed) && indexOfFold(concepts, trimmed) >= 0 {
		return nil, fmt.Errorf("%w: concept %q already exists", apperrors.ErrDuplicate, trimmed)
	}

	concepts[pos] = trimmed
	if err := s.conceptRepo.SaveConcepts(ctx, concepts); err != nil {
		s.LogError(ctx, err, "Failed to save concepts after rename")
		return nil, err
	}

	if err := s.rewriteEntryConcepts(ctx, oldName, trimmed); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Concept renamed", slog.String("old", oldName), slog.String("new", trimmed))
	return concepts, nil
}

func (s *conceptService) DeleteConcept(ctx context.Context, name string) ([]string, error) {
	if name == domain.SentinelConcept {
		return nil, fmt.Errorf("%w: the %q concept cannot be deleted", apperrors.ErrValidation, domain.SentinelConcept)
	}

	concepts, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	pos := indexOf(concepts, name)
	if pos < 0 {
		return nil, fmt.Errorf("%w: concept %q", apperrors.ErrNotFound, name)
	}

	concepts = append(concepts[:pos], concepts[pos+1:]...)
	if err := s.conceptRepo.SaveConcepts(ctx, concepts); err != nil {
		s.LogError(ctx, err, "Failed to save concepts after delete")
		return nil, err
	}

	// Orphaned entries fall back to the catch-all concept.
	if err := s.rewriteEntryConcepts(ctx, name, domain.SentinelConcept); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Concept deleted", slog.String("concept", name))
	return concepts, nil
}

func (s *conceptService) ReorderConcepts(ctx context.Context, fromIndex, toIndex int) ([]string, error) {
	concepts, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	if fromIndex < 0 || fromIndex >= len(concepts) || toIndex < 0 || toIndex >= len(concepts) {
		return nil, fmt.Errorf("%w: reorder index out of range", apperrors.ErrValidation)
	}
	if concepts[fromIndex] == domain.SentinelConcept || concepts[toIndex] == domain.SentinelConcept {
		return nil, fmt.Errorf("%w: the %q concept cannot be reordered", apperrors.ErrValidation, domain.SentinelConcept)
	}

	moved := concepts[fromIndex]
	concepts = append(concepts[:fromIndex], concepts[fromIndex+1:]...)
	concepts = append(concepts[:toIndex], append([]string{moved}, concepts[toIndex:]...)...)

	if err := s.conceptRepo.SaveConcepts(ctx, concepts); err != nil {
		s.LogError(ctx, err, "Failed to save concepts after reorder")
		return nil, err
	}
	return concepts, nil
}

// rewriteEntryConcepts updates every entry referencing oldName to newName as
// part of the same logical operation as the registry change.
func (s *conceptService) rewriteEntryConcepts(ctx context.Context, oldName, newName string) error {
	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for concept rewrite")
		return err
	}

	changed := false
	for i := range entries {
		if entries[i].Concept == oldName {
			entries[i].Concept = newName
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save entries after concept rewrite")
		return err
	}
	return nil
}

func indexOf(list []string, name string) int {
	for i, c := range list {
		if c == name {
			return i
		}
	}
	return -1
}

func indexOfFold(list []string, name string) int {
	for i, c := range list {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}
