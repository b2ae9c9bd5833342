package estimation

import (
	"testing"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []decimal.Decimal
		want   string
	}{
		{"empty", nil, "0"},
		{"single", []decimal.Decimal{dec("42.5")}, "42.5"},
		{"rounds to two places", []decimal.Decimal{dec("10"), dec("20"), dec("33.333")}, "21.11"},
		{"rounds half away from zero", []decimal.Decimal{dec("0.125")}, "0.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAverage(tt.values)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestEstimateForecast_EmptyHistory(t *testing.T) {
	forecast, err := EstimateForecast(nil, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNoHistory)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, forecast)
}

func TestEstimateForecast_MondayOnlyHistory(t *testing.T) {
	// 2025-01-06 and 2025-01-13 are Mondays.
	history := []domain.RevenuePoint{
		{Date: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), Amount: dec("100")},
		{Date: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), Amount: dec("150.55")},
	}
	now := time.Date(2025, 1, 15, 18, 30, 0, 0, time.UTC) // Wednesday

	forecast, err := EstimateForecast(history, now)
	require.NoError(t, err)
	require.Len(t, forecast, domain.ForecastDays)

	for i, p := range forecast {
		assert.Equal(t, time.Date(2025, 1, 16+i, 0, 0, 0, 0, time.UTC), p.Date)
		if p.Date.Weekday() == time.Monday {
			assert.True(t, dec("125.28").Equal(p.PredictedAmount), "got %s", p.PredictedAmount)
		} else {
			assert.True(t, p.PredictedAmount.IsZero(), "%s should be zero", p.Date.Format(domain.DateLayout))
		}
	}
}

func TestEstimateForecast_StartsTheDayAfterNow(t *testing.T) {
	history := []domain.RevenuePoint{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Amount: dec("10")},
	}
	now := time.Date(2025, 12, 28, 23, 59, 59, 0, time.UTC)

	forecast, err := EstimateForecast(history, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), forecast[0].Date)
	assert.Equal(t, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), forecast[6].Date)
}

func TestWeekdayAverages(t *testing.T) {
	history := []domain.RevenuePoint{
		{Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Amount: dec("10")}, // Sunday
		{Date: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), Amount: dec("20")},
		{Date: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), Amount: dec("7.777")}, // Saturday
	}

	averages := WeekdayAverages(history)
	assert.Len(t, averages, 2)
	assert.True(t, dec("15").Equal(averages[time.Sunday]))
	assert.True(t, dec("7.78").Equal(averages[time.Saturday]))
}
