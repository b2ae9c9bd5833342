package domain_test

import (
	"testing"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRevenueEntry_Cancel(t *testing.T) {
	entry := domain.RevenueEntry{EntryID: 1, IsActive: true}

	assert.NoError(t, entry.Cancel())
	assert.False(t, entry.IsActive)

	err := entry.Cancel()
	assert.ErrorIs(t, err, apperrors.ErrAlreadyCancelled)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.False(t, entry.IsActive)
}

func TestValidateEntryValues(t *testing.T) {
	now := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		amount  decimal.Decimal
		wantErr error
	}{
		{
			name:   "today is allowed",
			date:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			amount: decimal.NewFromInt(100),
		},
		{
			name:   "past date is allowed",
			date:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			amount: decimal.RequireFromString("0.01"),
		},
		{
			name:    "tomorrow is rejected",
			date:    time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			amount:  decimal.NewFromInt(10),
			wantErr: apperrors.ErrFutureDate,
		},
		{
			name:    "zero amount is rejected",
			date:    time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
			amount:  decimal.Zero,
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "negative amount is rejected",
			date:    time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
			amount:  decimal.NewFromInt(-5),
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "sub-cent amount is rejected, not rounded",
			date:    time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
			amount:  decimal.RequireFromString("0.005"),
			wantErr: apperrors.ErrAmountPrecision,
		},
		{
			name:   "trailing zeros are fine",
			date:   time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
			amount: decimal.RequireFromString("12.500"),
		},
		{
			name:    "amount beyond the column is rejected",
			date:    time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
			amount:  decimal.RequireFromString("1e12"),
			wantErr: apperrors.ErrAmountOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateEntryValues(tt.date, tt.amount, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsAfterDay_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 1, 0, time.UTC)

	assert.False(t, domain.IsAfterDay(time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC), now))
	assert.True(t, domain.IsAfterDay(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), now))
	// 2025-03-01 21:00 in UTC-3 is 2025-03-02 00:00 UTC.
	brt := time.FixedZone("BRT", -3*60*60)
	assert.True(t, domain.IsAfterDay(time.Date(2025, 3, 1, 21, 0, 0, 0, brt), now))
}

func TestMonthWindow(t *testing.T) {
	first, last := domain.MonthWindow(time.Date(2024, 2, 15, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)

	first, last = domain.MonthWindow(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2025-01-10")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = domain.ParseDate("10/01/2025")
	assert.Error(t, err)
}
