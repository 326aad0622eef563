package dto

import (
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ConceptBalanceResponse is one row of the per-concept breakdown.
type ConceptBalanceResponse struct {
	Concept string          `json:"concept"`
	Balance decimal.Decimal `json:"balance"`
}

// DashboardResponse carries every dashboard statistic.
type DashboardResponse struct {
	TotalSaved      decimal.Decimal          `json:"totalSaved"`
	TotalAvailable  decimal.Decimal          `json:"totalAvailable"`
	Today           decimal.Decimal          `json:"today"`
	Last7Days       decimal.Decimal          `json:"last7Days"`
	ThisMonth       decimal.Decimal          `json:"thisMonth"`
	BestDay         decimal.Decimal          `json:"bestDay"`
	DailyAverage    decimal.Decimal          `json:"dailyAverage"`
	StreakDays      int                      `json:"streakDays"`
	ConceptBalances []ConceptBalanceResponse `json:"conceptBalances"`
}

// ToDashboardResponse converts domain.DashboardStats to the DTO.
func ToDashboardResponse(s *domain.DashboardStats) DashboardResponse {
	balances := make([]ConceptBalanceResponse, len(s.ConceptBalances))
	for i, b := range s.ConceptBalances {
		balances[i] = ConceptBalanceResponse{Concept: b.Concept, Balance: b.Balance}
	}
	return DashboardResponse{
		TotalSaved:      s.TotalSaved,
		TotalAvailable:  s.TotalAvailable,
		Today:           s.Today,
		Last7Days:       s.Last7Days,
		ThisMonth:       s.ThisMonth,
		BestDay:         s.BestDay,
		DailyAverage:    s.DailyAverage,
		StreakDays:      s.StreakDays,
		ConceptBalances: balances,
	}
}
