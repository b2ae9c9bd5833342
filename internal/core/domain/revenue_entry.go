package domain

import (
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/shopspring/decimal"
)

// EntryScope selects which revenue entries a read may see.
type EntryScope int

const (
	// ScopeActive restricts reads to live (not cancelled) entries. Default for lists and sums.
	ScopeActive EntryScope = iota
	// ScopeAny finds an entry regardless of its active flag. Used by administrative lookups.
	ScopeAny
)

// RevenueEntry is one day's recorded revenue for one operation.
type RevenueEntry struct {
	EntryID     int64              `json:"id"`
	OperationID int64              `json:"operationId"` // immutable once created
	Date        time.Time          `json:"date"`        // UTC calendar date
	Amount      decimal.Decimal    `json:"amount"`
	CreatedAt   time.Time          `json:"createdAt"`
	IsActive    bool               `json:"active"`
	Operation   *OperationSnapshot `json:"operation,omitempty"`
}

// Cancel soft-deletes the entry. Cancelling twice is an error, never a no-op.
func (e *RevenueEntry) Cancel() error {
	if !e.IsActive {
		return apperrors.ErrAlreadyCancelled
	}
	e.IsActive = false
	return nil
}

// ValidateEntryValues checks the rules shared by create and update: the date
// may not be after today (UTC) and the amount must be a positive value with
// at most two decimal places that fits the amount column.
func ValidateEntryValues(date time.Time, amount decimal.Decimal, now time.Time) error {
	if IsAfterDay(date, now) {
		return apperrors.ErrFutureDate
	}
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	if !utils.HasMoneyPrecision(amount) {
		return apperrors.ErrAmountPrecision
	}
	if !utils.InMoneyRange(amount) {
		return apperrors.ErrAmountOutOfRange
	}
	return nil
}

// RevenueFilter narrows a paginated entry search. Nil fields are unconstrained.
type RevenueFilter struct {
	OperationID *int64
	StartDate   *time.Time
	EndDate     *time.Time
	Scope       EntryScope
	Limit       int
	Offset      int
}

// RevenuePoint is a (date, amount) pair of revenue history.
type RevenuePoint struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// EntryPage is one page of a revenue entry search.
type EntryPage struct {
	Items      []RevenueEntry
	TotalItems int64
	Page       int
	PageSize   int
}
