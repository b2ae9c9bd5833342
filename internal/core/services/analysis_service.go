package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// analysisService loads an operation's active history and hands it to an Estimator.
type analysisService struct {
	BaseService
	operationRepo portsrepo.OperationReader
	revenueRepo   portsrepo.RevenueAggregator
	estimator     portssvc.Estimator
}

// NewAnalysisService creates the analysis orchestrator.
func NewAnalysisService(
	operationRepo portsrepo.OperationReader,
	revenueRepo portsrepo.RevenueAggregator,
	estimator portssvc.Estimator,
) portssvc.AnalysisService {
	return &analysisService{
		operationRepo: operationRepo,
		revenueRepo:   revenueRepo,
		estimator:     estimator,
	}
}

var _ portssvc.AnalysisService = (*analysisService)(nil)

func (s *analysisService) DailyAverage(ctx context.Context, operationID int64) (decimal.Decimal, error) {
	history, err := s.loadHistory(ctx, operationID)
	if err != nil {
		return decimal.Zero, err
	}

	values := make([]decimal.Decimal, len(history))
	for i, p := range history {
		values[i] = p.Amount
	}

	avg, err := s.estimator.Average(ctx, values)
	if err != nil {
		s.logEstimatorError(ctx, err, "Estimator failed to compute average", operationID)
		return decimal.Zero, err
	}
	return avg, nil
}

func (s *analysisService) Forecast(ctx context.Context, operationID int64) ([]domain.ForecastPoint, error) {
	history, err := s.loadHistory(ctx, operationID)
	if err != nil {
		return nil, err
	}

	points, err := s.estimator.Forecast(ctx, history)
	if err != nil {
		s.logEstimatorError(ctx, err, "Estimator failed to compute forecast", operationID)
		return nil, err
	}
	return points, nil
}

func (s *analysisService) loadHistory(ctx context.Context, operationID int64) ([]domain.RevenuePoint, error) {
	if _, err := s.operationRepo.FindOperationByID(ctx, operationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrOperationNotFound
		}
		s.LogError(ctx, err, "Failed to load operation for analysis",
			slog.Int64("operation_id", operationID))
		return nil, err
	}

	history, err := s.revenueRepo.ListHistory(ctx, operationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load revenue history",
			slog.Int64("operation_id", operationID))
		return nil, err
	}
	if len(history) == 0 {
		return nil, apperrors.ErrNoHistory
	}
	return history, nil
}

func (s *analysisService) logEstimatorError(ctx context.Context, err error, msg string, operationID int64) {
	if errors.Is(err, apperrors.ErrUnavailable) {
		s.GetLogger(ctx).Warn(msg, slog.String("error", err.Error()), slog.Int64("operation_id", operationID))
		return
	}
	s.LogError(ctx, err, msg, slog.Int64("operation_id", operationID))
}
