package dto

import (
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateOperationRequest defines the data needed to register a new operation.
type CreateOperationRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description *string         `json:"description"`                       // Optional
	MonthlyGoal decimal.Decimal `json:"monthlyGoal" binding:"dgte0,dmoney"` // Defaults to zero
}

// UpdateOperationRequest defines the data allowed for updating an operation.
// Name and goal are always replaced; IsActive is only applied when provided.
type UpdateOperationRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description *string         `json:"description"`
	MonthlyGoal decimal.Decimal `json:"monthlyGoal" binding:"dgte0,dmoney"`
	IsActive    *bool           `json:"active"`
}

// OperationResponse defines the data returned for an operation.
type OperationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Active      bool      `json:"active"`
	MonthlyGoal string    `json:"monthlyGoal"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToOperationResponse converts a domain.Operation to OperationResponse DTO
func ToOperationResponse(op *domain.Operation) OperationResponse {
	return OperationResponse{
		ID:          op.OperationID,
		Name:        op.Name,
		Description: op.Description,
		Active:      op.IsActive,
		MonthlyGoal: utils.FormatMoney(op.MonthlyGoal),
		CreatedAt:   op.CreatedAt,
	}
}

// ToListOperationResponse converts a slice of domain.Operation to a slice of OperationResponse DTOs
func ToListOperationResponse(ops []domain.Operation) []OperationResponse {
	res := make([]OperationResponse, len(ops))
	for i := range ops {
		res[i] = ToOperationResponse(&ops[i])
	}
	return res
}
