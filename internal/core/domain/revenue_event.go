package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueEventType names a revenue entry lifecycle transition.
type RevenueEventType string

const (
	RevenueEntryCreated   RevenueEventType = "revenue_entry.created"
	RevenueEntryUpdated   RevenueEventType = "revenue_entry.updated"
	RevenueEntryCancelled RevenueEventType = "revenue_entry.cancelled"
)

// RevenueEvent is published after a revenue entry change has been committed.
type RevenueEvent struct {
	EventID     string           `json:"eventId"`
	Type        RevenueEventType `json:"type"`
	EntryID     int64            `json:"entryId"`
	OperationID int64            `json:"operationId"`
	Date        string           `json:"date"` // YYYY-MM-DD
	Amount      decimal.Decimal  `json:"amount"`
	OccurredAt  time.Time        `json:"occurredAt"`
}
