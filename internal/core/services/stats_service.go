package services

import (
	"context"
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/utils/savings"
)

// statsService implements the StatsSvcFacade interface. Every read is a full
// recomputation over the entry collection; there is nothing to invalidate.
type statsService struct {
	BaseService
	entryRepo       portsrepo.EntryRepository
	balanceConcepts []string
}

// NewStatsService creates a new stats service.
func NewStatsService(entryRepo portsrepo.EntryRepository, balanceConcepts []string) portssvc.StatsSvcFacade {
	return &statsService{entryRepo: entryRepo, balanceConcepts: balanceConcepts}
}

var _ portssvc.StatsSvcFacade = (*statsService)(nil)

func (s *statsService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for dashboard")
		return nil, err
	}

	now := time.Now()
	today := domain.FormatDay(now)

	// The per-concept breakdown hides the account snapshots and the
	// catch-all concept.
	excluded := make([]string, 0, len(s.balanceConcepts)+1)
	excluded = append(excluded, s.balanceConcepts...)
	excluded = append(excluded, domain.SentinelConcept)

	stats := &domain.DashboardStats{
		TotalSaved:      savings.TotalSaved(entries),
		TotalAvailable:  savings.AvailableBalance(entries, s.balanceConcepts),
		Today:           savings.SumOnDay(entries, today),
		Last7Days:       savings.SumLastDays(entries, now, 7),
		ThisMonth:       savings.SumMonth(entries, now),
		BestDay:         savings.BestDay(entries),
		DailyAverage:    savings.DailyAverage(entries),
		StreakDays:      savings.Streak(entries, now),
		ConceptBalances: savings.ConceptBalances(entries, excluded),
	}
	return stats, nil
}
