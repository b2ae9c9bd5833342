package services

import (
	"context"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
)

// OperationReaderSvc defines read operations for operations
type OperationReaderSvc interface {
	// GetOperationByID retrieves a specific operation, active or not.
	GetOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error)

	// ListOperations retrieves all operations.
	ListOperations(ctx context.Context) ([]domain.Operation, error)
}

// OperationWriterSvc defines write operations for operations
type OperationWriterSvc interface {
	// CreateOperation registers a new, active operation.
	CreateOperation(ctx context.Context, req dto.CreateOperationRequest) (*domain.Operation, error)

	// UpdateOperation changes an operation's details and optionally its active flag.
	UpdateOperation(ctx context.Context, operationID int64, req dto.UpdateOperationRequest) (*domain.Operation, error)

	// DeactivateOperation marks an operation inactive. Operations are never deleted.
	DeactivateOperation(ctx context.Context, operationID int64) error
}

// OperationSvcFacade combines all operation-related service interfaces
type OperationSvcFacade interface {
	OperationReaderSvc
	OperationWriterSvc
}
