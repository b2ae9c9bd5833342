package domain

import (
	"github.com/shopspring/decimal"
)

// GoalProgress is the month-to-date position of an operation against its goal.
type GoalProgress struct {
	OperationName   string          `json:"operationName"`
	MonthlyGoal     decimal.Decimal `json:"monthlyGoal"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	Remaining       decimal.Decimal `json:"remaining"`
	ReferenceMonth  string          `json:"referenceMonth"` // YYYY-MM
}
