package domain_test

import (
	"testing"
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalProgressPercent(t *testing.T) {
	goal := domain.Goal{Target: decimal.NewFromInt(1000)}

	assert.True(t, goal.ProgressPercent(decimal.NewFromInt(250)).Equal(decimal.NewFromInt(25)))
	// Over-saving is not clamped.
	assert.True(t, goal.ProgressPercent(decimal.NewFromInt(1500)).Equal(decimal.NewFromInt(150)))

	zeroTarget := domain.Goal{Target: decimal.Zero}
	assert.True(t, zeroTarget.ProgressPercent(decimal.NewFromInt(100)).IsZero())
}

func TestGoalDaysRemaining(t *testing.T) {
	today, err := time.Parse(domain.DayLayout, "2026-08-10")
	require.NoError(t, err)

	tests := []struct {
		name     string
		deadline string
		want     int
		ok       bool
	}{
		{"no deadline", "", 0, false},
		{"unparseable deadline", "soon", 0, false},
		{"today", "2026-08-10", 0, true},
		{"tomorrow", "2026-08-11", 1, true},
		{"next week", "2026-08-17", 7, true},
		{"overdue", "2026-08-07", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := domain.Goal{Target: decimal.NewFromInt(1), Deadline: tt.deadline}
			days, ok := goal.DaysRemaining(today)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, days)
		})
	}
}
