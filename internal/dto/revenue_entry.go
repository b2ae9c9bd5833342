package dto

import (
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/danilosilva441/projeto-faturamento/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateRevenueEntryRequest defines the data needed to record one day's revenue.
type CreateRevenueEntryRequest struct {
	OperationID int64           `json:"operationId" binding:"required,min=1"`
	Date        string          `json:"date" binding:"required,dateonly"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount" binding:"dgt0,dmoney"`
}

// UpdateRevenueEntryRequest defines the data allowed for updating an entry.
// The owning operation cannot change.
type UpdateRevenueEntryRequest struct {
	Date   string          `json:"date" binding:"required,dateonly"`
	Amount decimal.Decimal `json:"amount" binding:"dgt0,dmoney"`
}

// ListRecentEntriesParams defines query parameters for the recent entries listing.
type ListRecentEntriesParams struct {
	Limit int `form:"limit" binding:"min=0"` // 0 selects the default
}

// SearchRevenueEntriesParams defines query parameters for the paginated entry search.
type SearchRevenueEntriesParams struct {
	OperationID *int64 `form:"operationId" binding:"omitempty,min=1"`
	StartDate   string `form:"startDate" binding:"omitempty,dateonly"`
	EndDate     string `form:"endDate" binding:"omitempty,dateonly"`
	Page        int    `form:"page" binding:"min=0"`
	PageSize    int    `form:"pageSize" binding:"min=0"`
}

// OperationSummary is the flattened operation attached to an entry.
type OperationSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	MonthlyGoal string `json:"monthlyGoal"`
}

// RevenueEntryResponse defines the data returned for a revenue entry.
type RevenueEntryResponse struct {
	ID          int64             `json:"id"`
	OperationID int64             `json:"operationId"`
	Date        string            `json:"date"`
	Amount      string            `json:"amount"`
	CreatedAt   time.Time         `json:"createdAt"`
	Active      bool              `json:"active"`
	Operation   *OperationSummary `json:"operation,omitempty"`
}

// RevenueEntryPageResponse is one page of a revenue entry search.
type RevenueEntryPageResponse struct {
	TotalItems int64                  `json:"totalItems"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalPages int                    `json:"totalPages"`
	Items      []RevenueEntryResponse `json:"items"`
}

// ToRevenueEntryResponse converts a domain.RevenueEntry to RevenueEntryResponse DTO
func ToRevenueEntryResponse(entry *domain.RevenueEntry) RevenueEntryResponse {
	res := RevenueEntryResponse{
		ID:          entry.EntryID,
		OperationID: entry.OperationID,
		Date:        entry.Date.Format(domain.DateLayout),
		Amount:      utils.FormatMoney(entry.Amount),
		CreatedAt:   entry.CreatedAt,
		Active:      entry.IsActive,
	}
	if op := entry.Operation; op != nil {
		res.Operation = &OperationSummary{
			ID:          op.OperationID,
			Name:        op.Name,
			Active:      op.IsActive,
			MonthlyGoal: utils.FormatMoney(op.MonthlyGoal),
		}
	}
	return res
}

// ToListRevenueEntryResponse converts a slice of domain.RevenueEntry to a slice of RevenueEntryResponse DTOs
func ToListRevenueEntryResponse(entries []domain.RevenueEntry) []RevenueEntryResponse {
	res := make([]RevenueEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToRevenueEntryResponse(&entries[i])
	}
	return res
}

// ToRevenueEntryPageResponse converts a domain.EntryPage to its response DTO
func ToRevenueEntryPageResponse(page *domain.EntryPage) RevenueEntryPageResponse {
	return RevenueEntryPageResponse{
		TotalItems: page.TotalItems,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: pagination.TotalPages(page.TotalItems, page.PageSize),
		Items:      ToListRevenueEntryResponse(page.Items),
	}
}
