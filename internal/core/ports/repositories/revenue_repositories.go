package repositories

import (
	"context"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RevenueEntryReader defines read operations for revenue entries.
// Every lookup names the scope it reads in; there is no implicit filter.
type RevenueEntryReader interface {
	// FindEntryByID retrieves one entry with its operation attached.
	FindEntryByID(ctx context.Context, entryID int64, scope domain.EntryScope) (*domain.RevenueEntry, error)

	// ExistsOnDate reports whether an active entry other than excludeID occupies
	// (operationID, date). Pass 0 as excludeID to consider every entry.
	ExistsOnDate(ctx context.Context, operationID int64, date time.Time, excludeID int64) (bool, error)

	// ListEntries returns entries matching filter ordered by date descending.
	ListEntries(ctx context.Context, filter domain.RevenueFilter) ([]domain.RevenueEntry, error)

	// CountEntries returns how many entries match filter, ignoring Limit/Offset.
	CountEntries(ctx context.Context, filter domain.RevenueFilter) (int64, error)
}

// RevenueEntryWriter defines write operations for revenue entries.
// Unique violations on (operation, date) among active rows surface as apperrors.ErrDuplicateEntry.
type RevenueEntryWriter interface {
	// SaveEntry inserts a new entry and returns it with generated ID.
	SaveEntry(ctx context.Context, entry domain.RevenueEntry) (*domain.RevenueEntry, error)

	// UpdateEntryValues changes date and amount of an existing entry.
	UpdateEntryValues(ctx context.Context, entryID int64, date time.Time, amount decimal.Decimal) error

	// DeactivateEntry soft-deletes an active entry. An entry that is already
	// inactive when the update runs yields apperrors.ErrAlreadyCancelled.
	DeactivateEntry(ctx context.Context, entryID int64) error
}

// RevenueAggregator defines read-side aggregates over active entries.
type RevenueAggregator interface {
	// SumAmounts totals active entries of an operation with date in [from, to].
	SumAmounts(ctx context.Context, operationID int64, from, to time.Time) (decimal.Decimal, error)

	// ListHistory returns every active (date, amount) pair of an operation ordered by date.
	ListHistory(ctx context.Context, operationID int64) ([]domain.RevenuePoint, error)
}

// RevenueRepositoryFacade combines all revenue-related repository interfaces
type RevenueRepositoryFacade interface {
	RevenueEntryReader
	RevenueEntryWriter
	RevenueAggregator
}
