package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/shopspring/decimal"
)

const referenceMonthLayout = "2006-01"

type goalProgressService struct {
	BaseService
	operationRepo portsrepo.OperationReader
	revenueRepo   portsrepo.RevenueAggregator
}

// NewGoalProgressService creates the month-to-date goal calculator.
func NewGoalProgressService(operationRepo portsrepo.OperationReader, revenueRepo portsrepo.RevenueAggregator) portssvc.GoalProgressService {
	return &goalProgressService{
		operationRepo: operationRepo,
		revenueRepo:   revenueRepo,
	}
}

var _ portssvc.GoalProgressService = (*goalProgressService)(nil)

func (s *goalProgressService) ComputeProgress(ctx context.Context, operationID int64, asOf time.Time) (*domain.GoalProgress, error) {
	op, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrOperationNotFound
		}
		s.LogError(ctx, err, "Failed to load operation for goal progress",
			slog.Int64("operation_id", operationID))
		return nil, err
	}

	first, last := domain.MonthWindow(asOf)
	total, err := s.revenueRepo.SumAmounts(ctx, operationID, first, last)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum monthly revenue",
			slog.Int64("operation_id", operationID))
		return nil, err
	}

	goal := op.MonthlyGoal
	remaining := goal.Sub(total)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &domain.GoalProgress{
		OperationName:   op.Name,
		MonthlyGoal:     utils.RoundMoney(goal),
		TotalRevenue:    utils.RoundMoney(total),
		ProgressPercent: utils.PercentOf(total, goal),
		Remaining:       utils.RoundMoney(remaining),
		ReferenceMonth:  first.Format(referenceMonthLayout),
	}, nil
}
