package domain

import "github.com/shopspring/decimal"

// ConceptBalance is a concept with its accumulated balance, used for the
// per-concept breakdown on the dashboard.
type ConceptBalance struct {
	Concept string          `json:"concept"`
	Balance decimal.Decimal `json:"balance"`
}

// DashboardStats holds every statistic the dashboard renders. All values are
// recomputed from scratch on each read; there is no cached state.
type DashboardStats struct {
	TotalSaved      decimal.Decimal  `json:"totalSaved"`
	TotalAvailable  decimal.Decimal  `json:"totalAvailable"`
	Today           decimal.Decimal  `json:"today"`
	Last7Days       decimal.Decimal  `json:"last7Days"`
	ThisMonth       decimal.Decimal  `json:"thisMonth"`
	BestDay         decimal.Decimal  `json:"bestDay"`
	DailyAverage    decimal.Decimal  `json:"dailyAverage"`
	StreakDays      int              `json:"streakDays"`
	ConceptBalances []ConceptBalance `json:"conceptBalances"`
}
