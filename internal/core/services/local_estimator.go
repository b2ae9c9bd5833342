package services

import (
	"context"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/utils/estimation"
	"github.com/shopspring/decimal"
)

// localEstimator runs the estimation functions in-process. It never reports
// apperrors.ErrUnavailable.
type localEstimator struct {
	BaseService
}

// NewLocalEstimator returns an in-process Estimator. A nil clock uses the wall clock.
func NewLocalEstimator(now func() time.Time) portssvc.Estimator {
	return &localEstimator{BaseService: BaseService{now: now}}
}

var _ portssvc.Estimator = (*localEstimator)(nil)

func (e *localEstimator) Average(_ context.Context, values []decimal.Decimal) (decimal.Decimal, error) {
	return estimation.ComputeAverage(values), nil
}

func (e *localEstimator) Forecast(_ context.Context, history []domain.RevenuePoint) ([]domain.ForecastPoint, error) {
	return estimation.EstimateForecast(history, e.Now())
}
