package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueEntry is a revenue_entries row joined with the columns of its
// operation that make up the entry's snapshot.
type RevenueEntry struct {
	EntryID     int64           `db:"entry_id"`
	OperationID int64           `db:"operation_id"`
	EntryDate   time.Time       `db:"entry_date"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
	IsActive    bool            `db:"is_active"`

	OperationName        string          `db:"operation_name"`
	OperationIsActive    bool            `db:"operation_is_active"`
	OperationMonthlyGoal decimal.Decimal `db:"operation_monthly_goal"`
}
