package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	"github.com/danilosilva441/projeto-faturamento/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const FULL_OPERATION_SELECT_QUERY = `
	SELECT operation_id, name, description, is_active, monthly_goal, created_at
	FROM operations`

type PgxOperationRepository struct {
	BaseRepository
}

// newPgxOperationRepository creates a new repository for the operation registry.
func newPgxOperationRepository(pool *pgxpool.Pool) portsrepo.OperationRepositoryFacade {
	return &PgxOperationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OperationRepositoryFacade = (*PgxOperationRepository)(nil)

func toModelOperation(d domain.Operation) models.Operation {
	return models.Operation{
		OperationID: d.OperationID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		MonthlyGoal: d.MonthlyGoal,
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainOperation(m models.Operation) domain.Operation {
	return domain.Operation{
		OperationID: m.OperationID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		MonthlyGoal: m.MonthlyGoal,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// FindOperationByID retrieves an operation regardless of its active flag.
func (r *PgxOperationRepository) FindOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error) {
	rows, err := r.Pool.Query(ctx, FULL_OPERATION_SELECT_QUERY+` WHERE operation_id = $1`, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation %d: %w", operationID, err)
	}

	modelOp, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Operation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan operation %d: %w", operationID, err)
	}

	op := toDomainOperation(modelOp)
	return &op, nil
}

// ListOperations retrieves every operation ordered by name.
func (r *PgxOperationRepository) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	rows, err := r.Pool.Query(ctx, FULL_OPERATION_SELECT_QUERY+` ORDER BY name, operation_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}

	modelOps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Operation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan operations: %w", err)
	}

	ops := make([]domain.Operation, len(modelOps))
	for i, m := range modelOps {
		ops[i] = toDomainOperation(m)
	}
	return ops, nil
}

// SaveOperation inserts a new operation and returns it with its generated ID.
func (r *PgxOperationRepository) SaveOperation(ctx context.Context, operation domain.Operation) (*domain.Operation, error) {
	m := toModelOperation(operation)
	query := `
		INSERT INTO operations (name, description, is_active, monthly_goal, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING operation_id;
	`
	if err := r.Pool.QueryRow(ctx, query, m.Name, m.Description, m.IsActive, m.MonthlyGoal, m.CreatedAt).Scan(&m.OperationID); err != nil {
		if mapped := operationWriteErrors.translate(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to save operation %q: %w", m.Name, err)
	}

	saved := toDomainOperation(m)
	return &saved, nil
}

// UpdateOperation persists name, description, goal and active flag.
func (r *PgxOperationRepository) UpdateOperation(ctx context.Context, operation domain.Operation) error {
	m := toModelOperation(operation)
	query := `
		UPDATE operations
		SET name = $2, description = $3, is_active = $4, monthly_goal = $5
		WHERE operation_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.OperationID, m.Name, m.Description, m.IsActive, m.MonthlyGoal)
	if err != nil {
		if mapped := operationWriteErrors.translate(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update operation %d: %w", m.OperationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetOperationActive toggles the active flag.
func (r *PgxOperationRepository) SetOperationActive(ctx context.Context, operationID int64, active bool) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE operations SET is_active = $2 WHERE operation_id = $1;`, operationID, active)
	if err != nil {
		return fmt.Errorf("failed to set active=%t on operation %d: %w", active, operationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
