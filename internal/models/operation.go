package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation is the operations table row.
type Operation struct {
	OperationID int64           `db:"operation_id"`
	Name        string          `db:"name"`
	Description *string         `db:"description"` // Nullable
	IsActive    bool            `db:"is_active"`
	MonthlyGoal decimal.Decimal `db:"monthly_goal"`
	CreatedAt   time.Time       `db:"created_at"`
}
