package services

import (
	"context"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
)

// StatsSvcFacade recomputes the dashboard statistics on demand.
type StatsSvcFacade interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

// MilestoneSvcFacade evaluates milestone conditions against the current
// state and fires each at most once per goal lifetime.
type MilestoneSvcFacade interface {
	Evaluate(ctx context.Context) ([]domain.Notification, error)
}

// TipSvcFacade wraps the external AI savings-tip collaborator.
type TipSvcFacade interface {
	// GenerateTip never fails hard: missing configuration or provider errors
	// degrade to a fixed human-readable message.
	GenerateTip(ctx context.Context) (string, error)
}
