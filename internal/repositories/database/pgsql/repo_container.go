package pgsql

import (
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every state repository over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:     newPgxEntryRepository(dbPool),
		ConceptRepo:   newPgxConceptRepository(dbPool),
		GoalRepo:      newPgxGoalRepository(dbPool),
		MilestoneRepo: newPgxMilestoneRepository(dbPool),
	}
}
