package pgsql

import (
	"errors"
	"fmt"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes the repositories translate into application errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// pgErrorMap maps SQLSTATE codes to the application errors a write reports.
type pgErrorMap map[string]error

var (
	revenueWriteErrors = pgErrorMap{
		pgUniqueViolation:     apperrors.ErrDuplicateEntry,
		pgForeignKeyViolation: apperrors.ErrOperationNotFound,
		pgCheckViolation:      apperrors.ErrInvalidAmount,
		pgNumericOutOfRange:   apperrors.ErrAmountOutOfRange,
	}
	operationWriteErrors = pgErrorMap{
		pgCheckViolation:    fmt.Errorf("%w: operation violates a table constraint", apperrors.ErrValidation),
		pgNumericOutOfRange: fmt.Errorf("%w: monthly goal must be less than 10000000000", apperrors.ErrValidation),
	}
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// pgErrorCode returns the SQLSTATE of err, or "" when err did not come from Postgres.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translate returns the mapped application error for err, or nil when err
// carries no SQLSTATE or one the map does not know.
func (m pgErrorMap) translate(err error) error {
	code := pgErrorCode(err)
	if code == "" {
		return nil
	}
	return m[code]
}
