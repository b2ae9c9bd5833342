package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorCode(t *testing.T) {
	assert.Equal(t, "23505", pgErrorCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, "23505", pgErrorCode(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t, "", pgErrorCode(errors.New("connection reset by peer")))
	assert.Equal(t, "", pgErrorCode(nil))
}

func TestRevenueWriteErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   error
		status int
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperrors.ErrDuplicateEntry, 409},
		{"wrapped unique violation", fmt.Errorf("save entry: %w", &pgconn.PgError{Code: "23505"}), apperrors.ErrDuplicateEntry, 409},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, apperrors.ErrOperationNotFound, 404},
		{"wrapped foreign key violation", fmt.Errorf("save entry: %w", &pgconn.PgError{Code: "23503"}), apperrors.ErrOperationNotFound, 404},
		{"check violation", &pgconn.PgError{Code: "23514"}, apperrors.ErrInvalidAmount, 400},
		{"wrapped check violation", fmt.Errorf("update entry: %w", &pgconn.PgError{Code: "23514"}), apperrors.ErrInvalidAmount, 400},
		{"numeric out of range", &pgconn.PgError{Code: "22003"}, apperrors.ErrAmountOutOfRange, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := revenueWriteErrors.translate(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Equal(t, tt.status, apperrors.StatusCode(got))
		})
	}
}

func TestOperationWriteErrors(t *testing.T) {
	for _, code := range []string{"23514", "22003"} {
		got := operationWriteErrors.translate(fmt.Errorf("save operation: %w", &pgconn.PgError{Code: code}))
		assert.ErrorIs(t, got, apperrors.ErrValidation, code)
		assert.Equal(t, 400, apperrors.StatusCode(got), code)
	}
	assert.Nil(t, operationWriteErrors.translate(&pgconn.PgError{Code: "23505"}))
}

func TestPgErrorMap_UnmappedErrors(t *testing.T) {
	assert.Nil(t, revenueWriteErrors.translate(&pgconn.PgError{Code: "40001"}))
	assert.Nil(t, revenueWriteErrors.translate(errors.New("connection reset by peer")))
	assert.Nil(t, revenueWriteErrors.translate(nil))
}
