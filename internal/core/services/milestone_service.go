package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/utils/savings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	progress80  = decimal.NewFromInt(80)
	progress90  = decimal.NewFromInt(90)
	progress100 = decimal.NewFromInt(100)
)

// milestoneService implements the MilestoneSvcFacade interface. Each key is
// an independent unfired→fired latch; a fired key stays silent until the
// flag set is reset by a goal change or deletion.
type milestoneService struct {
	BaseService
	entryRepo     portsrepo.EntryRepository
	goalRepo      portsrepo.GoalRepository
	milestoneRepo portsrepo.MilestoneRepository
}

// NewMilestoneService creates a new milestone service.
func NewMilestoneService(entryRepo portsrepo.EntryRepository, goalRepo portsrepo.GoalRepository, milestoneRepo portsrepo.MilestoneRepository) portssvc.MilestoneSvcFacade {
	return &milestoneService{entryRepo: entryRepo, goalRepo: goalRepo, milestoneRepo: milestoneRepo}
}

var _ portssvc.MilestoneSvcFacade = (*milestoneService)(nil)

// Evaluate checks every milestone condition against the current state and
// returns the notifications that fired on this cycle.
func (s *milestoneService) Evaluate(ctx context.Context) ([]domain.Notification, error) {
	goal, err := s.goalRepo.FindGoal(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goal for milestone evaluation")
		return nil, err
	}
	if goal == nil {
		return []domain.Notification{}, nil
	}

	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for milestone evaluation")
		return nil, err
	}
	flags, err := s.milestoneRepo.FindFlags(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load milestone flags")
		return nil, err
	}

	progress := goal.ProgressPercent(savings.TotalSaved(entries))
	completed := progress.GreaterThanOrEqual(progress100)

	fired := []domain.Notification{}
	changed := false
	check := func(key string, condition bool, notificationType domain.NotificationType, title, message string) {
		if !condition || flags[key] {
			return
		}
		flags[key] = true
		changed = true
		fired = append(fired, domain.Notification{
			NotificationID: uuid.NewString(),
			Milestone:      key,
			Type:           notificationType,
			Title:          title,
			Message:        message,
		})
	}

	// Completion first; a finished goal must not also emit a stale
	// progress-band notification in the same cycle.
	check(domain.MilestoneGoal100, completed, domain.NotificationSuccess,
		"¡Meta Alcanzada!",
		fmt.Sprintf("¡Felicidades! Has completado tu meta: %q.", goal.Description))

	if !completed {
		check(domain.MilestoneGoal90, progress.GreaterThanOrEqual(progress90), domain.NotificationInfo,
			"¡Ya casi!",
			"Estás a más del 90% de tu meta. ¡Sigue así!")
		check(domain.MilestoneGoal80,
			progress.GreaterThanOrEqual(progress80) && progress.LessThan(progress90),
			domain.NotificationInfo,
			"¡Estás cerca!",
			"Has superado el 80% de tu meta.")
	}

	if days, ok := goal.DaysRemaining(time.Now()); ok && days >= 0 && !completed {
		check(domain.MilestoneDeadline1, days <= 1, domain.NotificationWarning,
			"¡Último día!",
			fmt.Sprintf("Tu meta %q vence pronto.", goal.Description))
		check(domain.MilestoneDeadline7, days > 1 && days <= 7, domain.NotificationWarning,
			"Una semana restante",
			"Quedan 7 días o menos para tu meta.")
	}

	if changed {
		if err := s.milestoneRepo.SaveFlags(ctx, flags); err != nil {
			s.LogError(ctx, err, "Failed to persist milestone flags")
			return nil, err
		}
		s.LogInfo(ctx, "Milestones fired", slog.Int("count", len(fired)))
	}
	return fired, nil
}
