package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/shopspring/decimal"
)

// operationService implements the OperationSvcFacade interface
type operationService struct {
	BaseService
	operationRepo portsrepo.OperationRepositoryFacade
}

// NewOperationService creates a new operation service with the provided dependencies
func NewOperationService(operationRepo portsrepo.OperationRepositoryFacade) portssvc.OperationSvcFacade {
	return &operationService{operationRepo: operationRepo}
}

// Ensure operationService implements the OperationSvcFacade interface
var _ portssvc.OperationSvcFacade = (*operationService)(nil)

func (s *operationService) GetOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error) {
	op, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errOperationMissing()
		}
		s.LogError(ctx, err, "Failed to find operation by ID",
			slog.Int64("operation_id", operationID))
		return nil, err
	}
	return op, nil
}

func (s *operationService) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	ops, err := s.operationRepo.ListOperations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list operations")
		return nil, err
	}
	if ops == nil {
		return []domain.Operation{}, nil
	}
	return ops, nil
}

func (s *operationService) CreateOperation(ctx context.Context, req dto.CreateOperationRequest) (*domain.Operation, error) {
	name, goal, err := normalizeOperationFields(req.Name, req.MonthlyGoal)
	if err != nil {
		return nil, err
	}

	op := domain.Operation{
		Name:        name,
		Description: req.Description,
		IsActive:    true,
		MonthlyGoal: goal,
		CreatedAt:   s.Now(),
	}

	saved, err := s.operationRepo.SaveOperation(ctx, op)
	if err != nil {
		s.LogError(ctx, err, "Failed to save operation", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Operation created successfully",
		slog.Int64("operation_id", saved.OperationID))
	return saved, nil
}

func (s *operationService) UpdateOperation(ctx context.Context, operationID int64, req dto.UpdateOperationRequest) (*domain.Operation, error) {
	op, err := s.GetOperationByID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	name, goal, err := normalizeOperationFields(req.Name, req.MonthlyGoal)
	if err != nil {
		return nil, err
	}

	op.Name = name
	op.Description = req.Description
	op.MonthlyGoal = goal
	if req.IsActive != nil {
		op.IsActive = *req.IsActive
	}

	if err := s.operationRepo.UpdateOperation(ctx, *op); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errOperationMissing()
		}
		s.LogError(ctx, err, "Failed to update operation",
			slog.Int64("operation_id", operationID))
		return nil, err
	}

	s.LogInfo(ctx, "Operation updated successfully",
		slog.Int64("operation_id", operationID))
	return op, nil
}

func (s *operationService) DeactivateOperation(ctx context.Context, operationID int64) error {
	if err := s.operationRepo.SetOperationActive(ctx, operationID, false); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errOperationMissing()
		}
		s.LogError(ctx, err, "Failed to deactivate operation",
			slog.Int64("operation_id", operationID))
		return err
	}

	s.LogInfo(ctx, "Operation deactivated",
		slog.Int64("operation_id", operationID))
	return nil
}

// errOperationMissing reports an absent operation. The registry serves
// inactive operations too, so the ledger's "does not exist or is inactive"
// error does not fit here.
func errOperationMissing() error {
	return apperrors.NewNotFoundError("operation not found")
}

func normalizeOperationFields(name string, goal decimal.Decimal) (string, decimal.Decimal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", decimal.Zero, apperrors.NewValidationFailedError("operation name is required")
	}
	if goal.IsNegative() {
		return "", decimal.Zero, apperrors.NewValidationFailedError("monthly goal cannot be negative")
	}
	if !utils.HasMoneyPrecision(goal) {
		return "", decimal.Zero, apperrors.NewValidationFailedError("monthly goal must have at most two decimal places")
	}
	if !utils.InMoneyRange(goal) {
		return "", decimal.Zero, apperrors.NewValidationFailedError("monthly goal must be less than 10000000000")
	}
	return name, goal, nil
}
