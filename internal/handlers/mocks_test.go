package handlers_test

import (
	"context"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OperationService ---
type MockOperationService struct {
	mock.Mock
}

func (m *MockOperationService) GetOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}
func (m *MockOperationService) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}
func (m *MockOperationService) CreateOperation(ctx context.Context, req dto.CreateOperationRequest) (*domain.Operation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}
func (m *MockOperationService) UpdateOperation(ctx context.Context, operationID int64, req dto.UpdateOperationRequest) (*domain.Operation, error) {
	args := m.Called(ctx, operationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}
func (m *MockOperationService) DeactivateOperation(ctx context.Context, operationID int64) error {
	args := m.Called(ctx, operationID)
	return args.Error(0)
}

var _ portssvc.OperationSvcFacade = (*MockOperationService)(nil)

// --- Mock RevenueService ---
type MockRevenueService struct {
	mock.Mock
}

func (m *MockRevenueService) ListRecent(ctx context.Context, limit int) ([]domain.RevenueEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueEntry), args.Error(1)
}
func (m *MockRevenueService) SearchEntries(ctx context.Context, params dto.SearchRevenueEntriesParams) (*domain.EntryPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryPage), args.Error(1)
}
func (m *MockRevenueService) CreateEntry(ctx context.Context, operationID int64, date time.Time, amount decimal.Decimal) (*domain.RevenueEntry, error) {
	args := m.Called(ctx, operationID, date, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueEntry), args.Error(1)
}
func (m *MockRevenueService) UpdateEntry(ctx context.Context, entryID int64, date time.Time, amount decimal.Decimal) (*domain.RevenueEntry, error) {
	args := m.Called(ctx, entryID, date, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueEntry), args.Error(1)
}
func (m *MockRevenueService) CancelEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

var _ portssvc.RevenueSvcFacade = (*MockRevenueService)(nil)

// --- Mock GoalProgressService ---
type MockGoalProgressService struct {
	mock.Mock
}

func (m *MockGoalProgressService) ComputeProgress(ctx context.Context, operationID int64, asOf time.Time) (*domain.GoalProgress, error) {
	args := m.Called(ctx, operationID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalProgress), args.Error(1)
}

var _ portssvc.GoalProgressService = (*MockGoalProgressService)(nil)

// --- Mock AnalysisService ---
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) DailyAverage(ctx context.Context, operationID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, operationID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockAnalysisService) Forecast(ctx context.Context, operationID int64) ([]domain.ForecastPoint, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastPoint), args.Error(1)
}

var _ portssvc.AnalysisService = (*MockAnalysisService)(nil)

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sameDay(expected string) any {
	want := day(expected)
	return mock.MatchedBy(func(t time.Time) bool { return t.Equal(want) })
}

func decimalEq(expected string) any {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
