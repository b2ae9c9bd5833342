package services_test

import (
	"context"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portsrepo "github.com/danilosilva441/projeto-faturamento/internal/core/ports/repositories"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OperationRepository ---
type MockOperationRepository struct {
	mock.Mock
}

var _ portsrepo.OperationRepositoryFacade = (*MockOperationRepository)(nil)

func (m *MockOperationRepository) FindOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) SaveOperation(ctx context.Context, operation domain.Operation) (*domain.Operation, error) {
	args := m.Called(ctx, operation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) UpdateOperation(ctx context.Context, operation domain.Operation) error {
	args := m.Called(ctx, operation)
	return args.Error(0)
}

func (m *MockOperationRepository) SetOperationActive(ctx context.Context, operationID int64, active bool) error {
	args := m.Called(ctx, operationID, active)
	return args.Error(0)
}

// --- Mock RevenueRepository ---
type MockRevenueRepository struct {
	mock.Mock
}

var _ portsrepo.RevenueRepositoryFacade = (*MockRevenueRepository)(nil)

func (m *MockRevenueRepository) FindEntryByID(ctx context.Context, entryID int64, scope domain.EntryScope) (*domain.RevenueEntry, error) {
	args := m.Called(ctx, entryID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueEntry), args.Error(1)
}

func (m *MockRevenueRepository) ExistsOnDate(ctx context.Context, operationID int64, date time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, operationID, date, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRevenueRepository) ListEntries(ctx context.Context, filter domain.RevenueFilter) ([]domain.RevenueEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueEntry), args.Error(1)
}

func (m *MockRevenueRepository) CountEntries(ctx context.Context, filter domain.RevenueFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRevenueRepository) SaveEntry(ctx context.Context, entry domain.RevenueEntry) (*domain.RevenueEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueEntry), args.Error(1)
}

func (m *MockRevenueRepository) UpdateEntryValues(ctx context.Context, entryID int64, date time.Time, amount decimal.Decimal) error {
	args := m.Called(ctx, entryID, date, amount)
	return args.Error(0)
}

func (m *MockRevenueRepository) DeactivateEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockRevenueRepository) SumAmounts(ctx context.Context, operationID int64, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, operationID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRevenueRepository) ListHistory(ctx context.Context, operationID int64) ([]domain.RevenuePoint, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenuePoint), args.Error(1)
}

// --- Mock Estimator ---
type MockEstimator struct {
	mock.Mock
}

var _ portssvc.Estimator = (*MockEstimator)(nil)

func (m *MockEstimator) Average(ctx context.Context, values []decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, values)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEstimator) Forecast(ctx context.Context, history []domain.RevenuePoint) ([]domain.ForecastPoint, error) {
	args := m.Called(ctx, history)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastPoint), args.Error(1)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portssvc.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishRevenueEvent(ctx context.Context, event domain.RevenueEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func portsrepoProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OperationRepo: new(MockOperationRepository),
		RevenueRepo:   new(MockRevenueRepository),
	}
}
