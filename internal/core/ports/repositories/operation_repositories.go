package repositories

import (
	"context"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
)

// OperationReader defines read operations for the operation registry
type OperationReader interface {
	// FindOperationByID retrieves an operation regardless of its active flag.
	FindOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error)

	// ListOperations retrieves every operation ordered by name.
	ListOperations(ctx context.Context) ([]domain.Operation, error)
}

// OperationWriter defines write operations for the operation registry
type OperationWriter interface {
	// SaveOperation inserts a new operation and returns it with its generated ID.
	SaveOperation(ctx context.Context, operation domain.Operation) (*domain.Operation, error)

	// UpdateOperation persists name, description, goal and active flag.
	UpdateOperation(ctx context.Context, operation domain.Operation) error

	// SetOperationActive toggles the active flag. Operations are never deleted.
	SetOperationActive(ctx context.Context, operationID int64, active bool) error
}

// OperationRepositoryFacade combines all operation-related repository interfaces
type OperationRepositoryFacade interface {
	OperationReader
	OperationWriter
}
