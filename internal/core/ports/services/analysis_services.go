package services

import (
	"context"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalProgressService derives month-to-date progress against an operation's goal
type GoalProgressService interface {
	// ComputeProgress evaluates the UTC month containing asOf.
	ComputeProgress(ctx context.Context, operationID int64, asOf time.Time) (*domain.GoalProgress, error)
}

// AnalysisService answers statistics over an operation's revenue history
type AnalysisService interface {
	// DailyAverage returns the mean daily revenue of the operation.
	DailyAverage(ctx context.Context, operationID int64) (decimal.Decimal, error)

	// Forecast predicts the next seven days of revenue for the operation.
	Forecast(ctx context.Context, operationID int64) ([]domain.ForecastPoint, error)
}

// Estimator computes statistics over raw revenue values. It may run in-process
// or in the separate analysis service; a remote estimator that cannot be
// reached reports apperrors.ErrUnavailable.
type Estimator interface {
	Average(ctx context.Context, values []decimal.Decimal) (decimal.Decimal, error)
	Forecast(ctx context.Context, history []domain.RevenuePoint) ([]domain.ForecastPoint, error)
}
