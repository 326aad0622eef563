package services

import (
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Entry = NewEntryService(repos.EntryRepo, cfg.BalanceConcepts)
	container.Concept = NewConceptService(repos.ConceptRepo, repos.EntryRepo)
	container.Goal = NewGoalService(repos.GoalRepo, repos.MilestoneRepo)
	container.Stats = NewStatsService(repos.EntryRepo, cfg.BalanceConcepts)
	container.Milestone = NewMilestoneService(repos.EntryRepo, repos.GoalRepo, repos.MilestoneRepo)
	container.Tip = NewTipService(repos.EntryRepo, cfg.GeminiAPIKey, cfg.GeminiModel)

	return container
}
