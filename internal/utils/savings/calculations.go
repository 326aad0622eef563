// Package savings holds the pure aggregation functions behind the dashboard.
// Every function is a deterministic fold over (entries, today) with no cached
// state, so recomputing from scratch always matches incremental expectation.
package savings

import (
	"math"
	"sort"
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TotalSaved is the sum of every entry amount.
func TotalSaved(entries []domain.Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// AvailableBalance sums the most recent snapshot of each balance concept.
// For every concept in balanceConcepts only the latest entry counts; among
// entries on the same date the one appearing later in the slice wins. This is
// the account-snapshot model: repeated snapshots of the same account must not
// accumulate.
func AvailableBalance(entries []domain.Entry, balanceConcepts []string) decimal.Decimal {
	tracked := make(map[string]struct{}, len(balanceConcepts))
	for _, c := range balanceConcepts {
		tracked[c] = struct{}{}
	}

	latest := make(map[string]domain.Entry)
	for _, e := range entries {
		if _, ok := tracked[e.Concept]; !ok {
			continue
		}
		if prev, ok := latest[e.Concept]; !ok || e.Date >= prev.Date {
			latest[e.Concept] = e
		}
	}

	total := decimal.Zero
	for _, e := range latest {
		total = total.Add(e.Amount)
	}
	return total
}

// SumOnDay sums amounts for entries dated exactly day.
func SumOnDay(entries []domain.Entry, day string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Date == day {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SumLastDays sums amounts for the window of today plus the (days-1)
// preceding calendar days, inclusive. Comparison is by calendar day, not
// elapsed time, so DST transitions cannot shift the window.
func SumLastDays(entries []domain.Entry, today time.Time, days int) decimal.Decimal {
	end := domain.FormatDay(today)
	start := domain.FormatDay(today.AddDate(0, 0, -(days - 1)))

	total := decimal.Zero
	for _, e := range entries {
		if e.Date >= start && e.Date <= end {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SumMonth sums amounts for entries in today's calendar year and month.
func SumMonth(entries []domain.Entry, today time.Time) decimal.Decimal {
	prefix := today.Format("2006-01")

	total := decimal.Zero
	for _, e := range entries {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// BestDay is the maximum per-date sum over all dates with entries, floored at
// zero when no entries exist.
func BestDay(entries []domain.Entry) decimal.Decimal {
	perDay := make(map[string]decimal.Decimal)
	for _, e := range entries {
		perDay[e.Date] = perDay[e.Date].Add(e.Amount)
	}

	best := decimal.Zero
	for _, sum := range perDay {
		if sum.GreaterThan(best) {
			best = sum
		}
	}
	return best
}

// DailyAverage is the total saved divided by the count of distinct dates
// carrying at least one entry; zero when there are no entries.
func DailyAverage(entries []domain.Entry) decimal.Decimal {
	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.Date] = struct{}{}
	}
	if len(days) == 0 {
		return decimal.Zero
	}
	return TotalSaved(entries).Div(decimal.NewFromInt(int64(len(days))))
}

// ConceptBalances groups amounts by concept, drops the excluded concepts,
// keeps only strictly positive balances and sorts them descending.
func ConceptBalances(entries []domain.Entry, excluded []string) []domain.ConceptBalance {
	skip := make(map[string]struct{}, len(excluded))
	for _, c := range excluded {
		skip[c] = struct{}{}
	}

	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, e := range entries {
		if _, ok := skip[e.Concept]; ok {
			continue
		}
		if _, ok := sums[e.Concept]; !ok {
			order = append(order, e.Concept)
		}
		sums[e.Concept] = sums[e.Concept].Add(e.Amount)
	}

	balances := make([]domain.ConceptBalance, 0, len(order))
	for _, concept := range order {
		if sums[concept].GreaterThan(decimal.Zero) {
			balances = append(balances, domain.ConceptBalance{Concept: concept, Balance: sums[concept]})
		}
	}
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].Balance.GreaterThan(balances[j].Balance)
	})
	return balances
}

// Streak counts consecutive calendar days with at least one entry, ending
// today or yesterday. It is zero if the most recent entry is older than
// yesterday, and at least one otherwise.
func Streak(entries []domain.Entry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[string]struct{})
	dates := make([]string, 0)
	for _, e := range entries {
		if _, ok := seen[e.Date]; !ok {
			seen[e.Date] = struct{}{}
			dates = append(dates, e.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	todayStr := domain.FormatDay(today)
	yesterdayStr := domain.FormatDay(today.AddDate(0, 0, -1))
	if dates[0] != todayStr && dates[0] != yesterdayStr {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if dayDiff(dates[i-1], dates[i]) == 1 {
			streak++
		} else {
			break
		}
	}
	return streak
}

// dayDiff returns the whole-day difference between two DayLayout dates.
// Dates are parsed in UTC so the result is immune to DST skew.
func dayDiff(later, earlier string) int {
	a, err := time.Parse(domain.DayLayout, later)
	if err != nil {
		return -1
	}
	b, err := time.Parse(domain.DayLayout, earlier)
	if err != nil {
		return -1
	}
	return int(math.Round(a.Sub(b).Hours() / 24))
}
