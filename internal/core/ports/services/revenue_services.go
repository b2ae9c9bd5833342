package services

import (
	"context"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/shopspring/decimal"
)

// RevenueReaderSvc defines read operations for revenue entries
type RevenueReaderSvc interface {
	// ListRecent returns the latest active entries, newest date first.
	ListRecent(ctx context.Context, limit int) ([]domain.RevenueEntry, error)

	// SearchEntries returns one page of active entries matching params.
	SearchEntries(ctx context.Context, params dto.SearchRevenueEntriesParams) (*domain.EntryPage, error)
}

// RevenueWriterSvc defines the revenue entry lifecycle
type RevenueWriterSvc interface {
	// CreateEntry records one day's revenue for an active operation.
	CreateEntry(ctx context.Context, operationID int64, date time.Time, amount decimal.Decimal) (*domain.RevenueEntry, error)

	// UpdateEntry changes the date and amount of an entry. The operation cannot change.
	UpdateEntry(ctx context.Context, entryID int64, date time.Time, amount decimal.Decimal) (*domain.RevenueEntry, error)

	// CancelEntry soft-deletes an entry.
	CancelEntry(ctx context.Context, entryID int64) error
}

// RevenueSvcFacade combines all revenue-related service interfaces
type RevenueSvcFacade interface {
	RevenueReaderSvc
	RevenueWriterSvc
}
