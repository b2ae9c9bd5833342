package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)

// revenueService implements the RevenueSvcFacade interface
type revenueService struct {
	BaseService
	revenueRepo   portsrepo.RevenueRepositoryFacade
	operationRepo portsrepo.OperationReader
	publisher     portssvc.EventPublisher
}

// RevenueServiceOption is a functional option for configuring the revenue service
type RevenueServiceOption func(*revenueService)

// WithRevenueClock replaces the wall clock used for the future-date rule and createdAt.
func WithRevenueClock(now func() time.Time) RevenueServiceOption {
	return func(s *revenueService) {
		s.now = now
	}
}

// WithEventPublisher publishes lifecycle events after each committed change.
func WithEventPublisher(publisher portssvc.EventPublisher) RevenueServiceOption {
	return func(s *revenueService) {
		s.publisher = publisher
	}
}

// NewRevenueService creates a new revenue ledger service with the provided options
func NewRevenueService(
	revenueRepo portsrepo.RevenueRepositoryFacade,
	operationRepo portsrepo.OperationReader,
	options ...RevenueServiceOption,
) portssvc.RevenueSvcFacade {
	svc := &revenueService{
		revenueRepo:   revenueRepo,
		operationRepo: operationRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure revenueService implements the RevenueSvcFacade interface
var _ portssvc.RevenueSvcFacade = (*revenueService)(nil)

// CreateEntry validates and inserts a new entry. It makes no existence check
// for (operation, date): the unique index decides between concurrent creators.
func (s *revenueService) CreateEntry(ctx context.Context, operationID int64, date time.Time, amount decimal.Decimal) (*domain.RevenueEntry, error) {
	now := s.Now()
	date = domain.DateOf(date)

	if err := domain.ValidateEntryValues(date, amount, now); err != nil {
		s.LogDebug(ctx, "Rejected revenue entry",
			slog.Int64("operation_id", operationID),
			slog.String("date", date.Format(domain.DateLayout)),
			slog.String("reason", err.Error()))
		return nil, err
	}

	op, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrOperationNotFound
		}
		s.LogError(ctx, err, "Failed to load operation for revenue entry",
			slog.Int64("operation_id", operationID))
		return nil, err
	}
	if !op.IsActive {
		return nil, apperrors.ErrOperationNotFound
	}

	saved, err := s.revenueRepo.SaveEntry(ctx, domain.RevenueEntry{
		OperationID: operationID,
		Date:        date,
		Amount:      amount,
		CreatedAt:   now,
		IsActive:    true,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			s.LogInfo(ctx, "Duplicate revenue entry rejected",
				slog.Int64("operation_id", operationID),
				slog.String("date", date.Format(domain.DateLayout)))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save revenue entry",
			slog.Int64("operation_id", operationID))
		return nil, err
	}
	saved.Operation = op.Snapshot()

	s.LogInfo(ctx, "Revenue entry created",
		slog.Int64("entry_id", saved.EntryID),
		slog.Int64("operation_id", operationID))
	s.publish(ctx, domain.RevenueEntryCreated, saved)
	return saved, nil
}

func (s *revenueService) UpdateEntry(ctx context.Context, entryID int64, date time.Time, amount decimal.Decimal) (*domain.RevenueEntry, error) {
	entry, err := s.findEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	date = domain.DateOf(date)
	if err := domain.ValidateEntryValues(date, amount, s.Now()); err != nil {
		return nil, err
	}

	// A cancelled entry does not occupy its date, so only an active one can collide.
	if entry.IsActive && !date.Equal(entry.Date) {
		taken, err := s.revenueRepo.ExistsOnDate(ctx, entry.OperationID, date, entryID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check revenue entry date",
				slog.Int64("entry_id", entryID))
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateEntry
		}
	}

	if err := s.revenueRepo.UpdateEntryValues(ctx, entryID, date, amount); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateEntry):
			return nil, err
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.ErrEntryNotFound
		}
		s.LogError(ctx, err, "Failed to update revenue entry",
			slog.Int64("entry_id", entryID))
		return nil, err
	}

	entry.Date = date
	entry.Amount = amount

	s.LogInfo(ctx, "Revenue entry updated", slog.Int64("entry_id", entryID))
	s.publish(ctx, domain.RevenueEntryUpdated, entry)
	return entry, nil
}

func (s *revenueService) CancelEntry(ctx context.Context, entryID int64) error {
	entry, err := s.findEntry(ctx, entryID)
	if err != nil {
		return err
	}

	if err := entry.Cancel(); err != nil {
		return err
	}

	// The repository re-checks the flag so a concurrent cancel still fails.
	if err := s.revenueRepo.DeactivateEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrAlreadyCancelled) {
			s.LogError(ctx, err, "Failed to cancel revenue entry",
				slog.Int64("entry_id", entryID))
		}
		return err
	}

	s.LogInfo(ctx, "Revenue entry cancelled", slog.Int64("entry_id", entryID))
	s.publish(ctx, domain.RevenueEntryCancelled, entry)
	return nil
}

func (s *revenueService) ListRecent(ctx context.Context, limit int) ([]domain.RevenueEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	entries, err := s.revenueRepo.ListEntries(ctx, domain.RevenueFilter{
		Scope: domain.ScopeActive,
		Limit: limit,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent revenue entries")
		return nil, err
	}
	if entries == nil {
		return []domain.RevenueEntry{}, nil
	}
	return entries, nil
}

func (s *revenueService) SearchEntries(ctx context.Context, params dto.SearchRevenueEntriesParams) (*domain.EntryPage, error) {
	filter := domain.RevenueFilter{
		OperationID: params.OperationID,
		Scope:       domain.ScopeActive,
	}

	if params.StartDate != "" {
		start, err := domain.ParseDate(params.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("startDate must be YYYY-MM-DD")
		}
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, err := domain.ParseDate(params.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("endDate must be YYYY-MM-DD")
		}
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, apperrors.NewValidationFailedError("startDate must not be after endDate")
	}

	page := pagination.NewPage(params.Page, params.PageSize)
	filter.Limit = page.Size
	filter.Offset = page.Offset()

	total, err := s.revenueRepo.CountEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count revenue entries")
		return nil, err
	}

	items := []domain.RevenueEntry{}
	if total > int64(filter.Offset) {
		items, err = s.revenueRepo.ListEntries(ctx, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to search revenue entries")
			return nil, err
		}
		if items == nil {
			items = []domain.RevenueEntry{}
		}
	}

	return &domain.EntryPage{
		Items:      items,
		TotalItems: total,
		Page:       page.Number,
		PageSize:   page.Size,
	}, nil
}

func (s *revenueService) findEntry(ctx context.Context, entryID int64) (*domain.RevenueEntry, error) {
	entry, err := s.revenueRepo.FindEntryByID(ctx, entryID, domain.ScopeAny)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		s.LogError(ctx, err, "Failed to find revenue entry",
			slog.Int64("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// publish is fire-and-forget: the write is already committed.
func (s *revenueService) publish(ctx context.Context, eventType domain.RevenueEventType, entry *domain.RevenueEntry) {
	if s.publisher == nil {
		return
	}
	event := domain.RevenueEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		EntryID:     entry.EntryID,
		OperationID: entry.OperationID,
		Date:        entry.Date.Format(domain.DateLayout),
		Amount:      entry.Amount,
		OccurredAt:  s.Now(),
	}
	if err := s.publisher.PublishRevenueEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish revenue event",
			slog.String("event_type", string(eventType)),
			slog.Int64("entry_id", entry.EntryID))
	}
}
