package savings_test

import (
	"testing"
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/utils/savings"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date, concept string, amount float64) domain.Entry {
	return domain.Entry{
		EntryID:        date + "/" + concept,
		Amount:         decimal.NewFromFloat(amount),
		Concept:        concept,
		Date:           date,
		Currency:       domain.CurrencyEUR,
		OriginalAmount: decimal.NewFromFloat(amount),
	}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestTotalSaved(t *testing.T) {
	assert.True(t, savings.TotalSaved(nil).IsZero())

	entries := []domain.Entry{
		entry("2026-08-01", "Comida", 25),
		entry("2026-08-02", "Transporte", 10.50),
		entry("2026-08-03", "Comida", -5),
	}
	assert.True(t, savings.TotalSaved(entries).Equal(decimal.NewFromFloat(30.50)))
}

func TestAvailableBalance_LatestSnapshotWins(t *testing.T) {
	balanceConcepts := []string{"Saldo en efectivo", "Saldo en PayPal Mama"}

	entries := []domain.Entry{
		entry("2026-08-01", "Saldo en efectivo", 100),
		entry("2026-08-05", "Saldo en efectivo", 150),
		entry("2026-08-03", "Saldo en PayPal Mama", 40),
		entry("2026-08-04", "Comida", 25),
	}

	// Only the 150 snapshot counts for cash; the 100 one is superseded.
	got := savings.AvailableBalance(entries, balanceConcepts)
	assert.True(t, got.Equal(decimal.NewFromInt(190)), "got %s", got)
}

func TestAvailableBalance_SameDayLaterEntryWins(t *testing.T) {
	balanceConcepts := []string{"Saldo en efectivo"}

	entries := []domain.Entry{
		entry("2026-08-05", "Saldo en efectivo", 100),
		entry("2026-08-05", "Saldo en efectivo", 80),
	}

	got := savings.AvailableBalance(entries, balanceConcepts)
	assert.True(t, got.Equal(decimal.NewFromInt(80)), "got %s", got)
}

func TestSumOnDay(t *testing.T) {
	entries := []domain.Entry{
		entry("2026-08-01", "Comida", 10),
		entry("2026-08-01", "Transporte", 5),
		entry("2026-08-02", "Comida", 7),
	}

	assert.True(t, savings.SumOnDay(entries, "2026-08-01").Equal(decimal.NewFromInt(15)))
	assert.True(t, savings.SumOnDay(entries, "2026-08-03").IsZero())
}

func TestSumLastDays(t *testing.T) {
	today := day(t, "2026-08-10")
	entries := []domain.Entry{
		entry("2026-08-10", "Comida", 10),
		entry("2026-08-04", "Comida", 5),  // Oldest day inside a 7-day window
		entry("2026-08-03", "Comida", 99), // Just outside
	}

	assert.True(t, savings.SumLastDays(entries, today, 7).Equal(decimal.NewFromInt(15)))
}

func TestSumMonth(t *testing.T) {
	today := day(t, "2026-08-15")
	entries := []domain.Entry{
		entry("2026-08-01", "Comida", 10),
		entry("2026-08-31", "Comida", 20),
		entry("2026-07-31", "Comida", 99),
	}

	assert.True(t, savings.SumMonth(entries, today).Equal(decimal.NewFromInt(30)))
}

func TestBestDay(t *testing.T) {
	assert.True(t, savings.BestDay(nil).IsZero())

	entries := []domain.Entry{
		entry("2026-08-01", "Comida", 10),
		entry("2026-08-01", "Transporte", 15),
		entry("2026-08-02", "Comida", 20),
	}
	assert.True(t, savings.BestDay(entries).Equal(decimal.NewFromInt(25)))

	// Every day negative floors at zero.
	negative := []domain.Entry{entry("2026-08-01", "Comida", -10)}
	assert.True(t, savings.BestDay(negative).IsZero())
}

func TestDailyAverage(t *testing.T) {
	assert.True(t, savings.DailyAverage(nil).IsZero())

	entries := []domain.Entry{
		entry("2026-08-01", "Comida", 10),
		entry("2026-08-01", "Transporte", 20),
		entry("2026-08-02", "Comida", 30),
	}
	// 60 over 2 distinct dates, not 3 entries.
	assert.True(t, savings.DailyAverage(entries).Equal(decimal.NewFromInt(30)))
}

func TestConceptBalances(t *testing.T) {
	entries := []domain.Entry{
		entry("2026-08-01", "Comida", 10),
		entry("2026-08-02", "Comida", 5),
		entry("2026-08-01", "Transporte", 40),
		entry("2026-08-01", "Ocio", 8),
		entry("2026-08-02", "Ocio", -8), // Nets to zero, dropped
		entry("2026-08-01", "Saldo en efectivo", 100),
	}

	balances := savings.ConceptBalances(entries, []string{"Saldo en efectivo"})

	require.Len(t, balances, 2)
	assert.Equal(t, "Transporte", balances[0].Concept)
	assert.True(t, balances[0].Balance.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "Comida", balances[1].Concept)
	assert.True(t, balances[1].Balance.Equal(decimal.NewFromInt(15)))
}

func TestStreak(t *testing.T) {
	today := day(t, "2026-08-10")

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no entries", nil, 0},
		{"three consecutive days ending today", []string{"2026-08-10", "2026-08-09", "2026-08-08"}, 3},
		{"streak ending yesterday still counts", []string{"2026-08-09", "2026-08-08"}, 2},
		{"gap breaks the streak", []string{"2026-08-10", "2026-08-08"}, 1},
		{"stale entries give no streak", []string{"2026-08-07", "2026-08-06"}, 0},
		{"duplicate dates count once", []string{"2026-08-10", "2026-08-10", "2026-08-09"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]domain.Entry, len(tt.dates))
			for i, d := range tt.dates {
				entries[i] = entry(d, "Comida", 1)
			}
			assert.Equal(t, tt.want, savings.Streak(entries, today))
		})
	}
}
