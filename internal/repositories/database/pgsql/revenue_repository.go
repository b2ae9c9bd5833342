package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	"github.com/danilosilva441/projeto-faturamento/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// FULL_REVENUE_SELECT_QUERY reads entries with the snapshot columns of their operation.
const FULL_REVENUE_SELECT_QUERY = `
	SELECT e.entry_id, e.operation_id, e.entry_date, e.amount, e.created_at, e.is_active,
		o.name AS operation_name, o.is_active AS operation_is_active, o.monthly_goal AS operation_monthly_goal
	FROM revenue_entries e
	JOIN operations o ON o.operation_id = e.operation_id`

type PgxRevenueRepository struct {
	BaseRepository
}

// newPgxRevenueRepository creates a new repository for revenue entries.
func newPgxRevenueRepository(pool *pgxpool.Pool) portsrepo.RevenueRepositoryFacade {
	return &PgxRevenueRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RevenueRepositoryFacade = (*PgxRevenueRepository)(nil)

func toDomainRevenueEntry(m models.RevenueEntry) domain.RevenueEntry {
	return domain.RevenueEntry{
		EntryID:     m.EntryID,
		OperationID: m.OperationID,
		Date:        domain.DateOf(m.EntryDate),
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt.UTC(),
		IsActive:    m.IsActive,
		Operation: &domain.OperationSnapshot{
			OperationID: m.OperationID,
			Name:        m.OperationName,
			IsActive:    m.OperationIsActive,
			MonthlyGoal: m.OperationMonthlyGoal,
		},
	}
}

// buildRevenueFilterQuery renders filter as a WHERE clause over alias e,
// numbering placeholders from 1. Scope is always applied explicitly.
func buildRevenueFilterQuery(filter domain.RevenueFilter) (string, []any) {
	var conditions []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Scope == domain.ScopeActive {
		conditions = append(conditions, "e.is_active = TRUE")
	}
	if filter.OperationID != nil {
		conditions = append(conditions, "e.operation_id = "+next(*filter.OperationID))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "e.entry_date >= "+next(domain.DateOf(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "e.entry_date <= "+next(domain.DateOf(*filter.EndDate)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// FindEntryByID retrieves one entry with its operation attached.
func (r *PgxRevenueRepository) FindEntryByID(ctx context.Context, entryID int64, scope domain.EntryScope) (*domain.RevenueEntry, error) {
	query := FULL_REVENUE_SELECT_QUERY + ` WHERE e.entry_id = $1`
	if scope == domain.ScopeActive {
		query += ` AND e.is_active = TRUE`
	}

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue entry %d: %w", entryID, err)
	}

	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.RevenueEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan revenue entry %d: %w", entryID, err)
	}

	entry := toDomainRevenueEntry(m)
	return &entry, nil
}

// ExistsOnDate reports whether another active entry occupies (operationID, date).
func (r *PgxRevenueRepository) ExistsOnDate(ctx context.Context, operationID int64, date time.Time, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM revenue_entries
			WHERE operation_id = $1 AND entry_date = $2 AND is_active = TRUE AND entry_id <> $3
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, operationID, domain.DateOf(date), excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check revenue entry date for operation %d: %w", operationID, err)
	}
	return exists, nil
}

// ListEntries returns entries matching filter, newest date first.
func (r *PgxRevenueRepository) ListEntries(ctx context.Context, filter domain.RevenueFilter) ([]domain.RevenueEntry, error) {
	where, args := buildRevenueFilterQuery(filter)
	query := FULL_REVENUE_SELECT_QUERY + where + ` ORDER BY e.entry_date DESC, e.entry_id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue entries: %w", err)
	}

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RevenueEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan revenue entries: %w", err)
	}

	entries := make([]domain.RevenueEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = toDomainRevenueEntry(m)
	}
	return entries, nil
}

// CountEntries returns how many entries match filter, ignoring Limit/Offset.
func (r *PgxRevenueRepository) CountEntries(ctx context.Context, filter domain.RevenueFilter) (int64, error) {
	where, args := buildRevenueFilterQuery(filter)

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM revenue_entries e`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count revenue entries: %w", err)
	}
	return total, nil
}

// SaveEntry inserts a new entry. The partial unique index on
// (operation_id, entry_date) WHERE is_active rejects a second active entry.
func (r *PgxRevenueRepository) SaveEntry(ctx context.Context, entry domain.RevenueEntry) (*domain.RevenueEntry, error) {
	query := `
		INSERT INTO revenue_entries (operation_id, entry_date, amount, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING entry_id;
	`
	saved := entry
	saved.Date = domain.DateOf(entry.Date)
	err := r.Pool.QueryRow(ctx, query, entry.OperationID, saved.Date, entry.Amount, entry.CreatedAt, entry.IsActive).Scan(&saved.EntryID)
	if err != nil {
		if mapped := revenueWriteErrors.translate(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to save revenue entry for operation %d: %w", entry.OperationID, err)
	}
	return &saved, nil
}

// UpdateEntryValues changes date and amount. operation_id is never written.
func (r *PgxRevenueRepository) UpdateEntryValues(ctx context.Context, entryID int64, date time.Time, amount decimal.Decimal) error {
	query := `UPDATE revenue_entries SET entry_date = $2, amount = $3 WHERE entry_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, domain.DateOf(date), amount)
	if err != nil {
		if mapped := revenueWriteErrors.translate(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update revenue entry %d: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateEntry flips is_active only while it is still true, so of two
// concurrent cancels exactly one affects a row.
func (r *PgxRevenueRepository) DeactivateEntry(ctx context.Context, entryID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE revenue_entries SET is_active = FALSE WHERE entry_id = $1 AND is_active = TRUE;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to deactivate revenue entry %d: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM revenue_entries WHERE entry_id = $1);`, entryID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to look up revenue entry %d: %w", entryID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrAlreadyCancelled
}

// SumAmounts totals active entries of an operation with date in [from, to].
func (r *PgxRevenueRepository) SumAmounts(ctx context.Context, operationID int64, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM revenue_entries
		WHERE operation_id = $1 AND is_active = TRUE AND entry_date BETWEEN $2 AND $3;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, operationID, domain.DateOf(from), domain.DateOf(to)).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue for operation %d: %w", operationID, err)
	}
	return total, nil
}

// ListHistory returns every active (date, amount) pair of an operation ordered by date.
func (r *PgxRevenueRepository) ListHistory(ctx context.Context, operationID int64) ([]domain.RevenuePoint, error) {
	query := `
		SELECT entry_date, amount
		FROM revenue_entries
		WHERE operation_id = $1 AND is_active = TRUE
		ORDER BY entry_date;
	`
	rows, err := r.Pool.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue history for operation %d: %w", operationID, err)
	}

	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RevenuePoint, error) {
		var p domain.RevenuePoint
		err := row.Scan(&p.Date, &p.Amount)
		p.Date = domain.DateOf(p.Date)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan revenue history for operation %d: %w", operationID, err)
	}
	return history, nil
}
