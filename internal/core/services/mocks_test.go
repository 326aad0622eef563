package services_test

import (
	"context"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) SaveEntries(ctx context.Context, entries []domain.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// --- Mock ConceptRepository ---
type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) FindConcepts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConceptRepository) SaveConcepts(ctx context.Context, concepts []string) error {
	args := m.Called(ctx, concepts)
	return args.Error(0)
}

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoal(ctx context.Context) (*domain.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock MilestoneRepository ---
type MockMilestoneRepository struct {
	mock.Mock
}

func (m *MockMilestoneRepository) FindFlags(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockMilestoneRepository) SaveFlags(ctx context.Context, flags map[string]bool) error {
	args := m.Called(ctx, flags)
	return args.Error(0)
}

func (m *MockMilestoneRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
