package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation is a tracked business unit / revenue stream.
type Operation struct {
	OperationID int64           `json:"id" db:"operation_id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	IsActive    bool            `json:"active" db:"is_active"`        // inactive operations reject new entries
	MonthlyGoal decimal.Decimal `json:"monthlyGoal" db:"monthly_goal"` // numeric(12,2), never negative
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// OperationSnapshot is the flattened view of an Operation embedded in a
// RevenueEntry. It carries no back-reference to the operation's entries.
type OperationSnapshot struct {
	OperationID int64           `json:"id"`
	Name        string          `json:"name"`
	IsActive    bool            `json:"active"`
	MonthlyGoal decimal.Decimal `json:"monthlyGoal"`
}

// Snapshot returns the flattened view of o.
func (o Operation) Snapshot() *OperationSnapshot {
	return &OperationSnapshot{
		OperationID: o.OperationID,
		Name:        o.Name,
		IsActive:    o.IsActive,
		MonthlyGoal: o.MonthlyGoal,
	}
}
