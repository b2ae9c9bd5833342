package estimation

import (
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/shopspring/decimal"
)

// ComputeAverage returns the arithmetic mean of values rounded to two places.
// An empty input averages to zero.
func ComputeAverage(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return utils.RoundMoney(sum.Div(decimal.NewFromInt(int64(len(values)))))
}

// WeekdayAverages buckets history by the UTC weekday of each date and returns
// the rounded mean of every bucket that has at least one point.
func WeekdayAverages(history []domain.RevenuePoint) map[time.Weekday]decimal.Decimal {
	buckets := make(map[time.Weekday][]decimal.Decimal, 7)
	for _, p := range history {
		wd := p.Date.UTC().Weekday()
		buckets[wd] = append(buckets[wd], p.Amount)
	}

	averages := make(map[time.Weekday]decimal.Decimal, len(buckets))
	for wd, amounts := range buckets {
		averages[wd] = ComputeAverage(amounts)
	}
	return averages
}

// EstimateForecast predicts the next domain.ForecastDays calendar days after
// now (UTC) using the mean revenue of the same weekday in history. Weekdays
// without history predict zero. An empty history yields apperrors.ErrNoHistory.
//
// This is a naive seasonal average, not a fitted model.
func EstimateForecast(history []domain.RevenuePoint, now time.Time) ([]domain.ForecastPoint, error) {
	if len(history) == 0 {
		return nil, apperrors.ErrNoHistory
	}

	averages := WeekdayAverages(history)
	today := domain.DateOf(now)

	forecast := make([]domain.ForecastPoint, 0, domain.ForecastDays)
	for i := 1; i <= domain.ForecastDays; i++ {
		day := today.AddDate(0, 0, i)
		predicted, ok := averages[day.Weekday()]
		if !ok {
			predicted = decimal.Zero
		}
		forecast = append(forecast, domain.ForecastPoint{Date: day, PredictedAmount: predicted})
	}
	return forecast, nil
}
