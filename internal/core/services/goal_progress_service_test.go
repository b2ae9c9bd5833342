package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type GoalProgressServiceTestSuite struct {
	suite.Suite
	mockOperationRepo *MockOperationRepository
	mockRevenueRepo   *MockRevenueRepository
	service           portssvc.GoalProgressService
	asOf              time.Time
}

func (suite *GoalProgressServiceTestSuite) SetupTest() {
	suite.mockOperationRepo = new(MockOperationRepository)
	suite.mockRevenueRepo = new(MockRevenueRepository)
	suite.service = services.NewGoalProgressService(suite.mockOperationRepo, suite.mockRevenueRepo)
	suite.asOf = time.Date(2025, 2, 14, 18, 0, 0, 0, time.UTC)
}

func (suite *GoalProgressServiceTestSuite) expect(goal, total string) {
	ctx := context.Background()
	suite.mockOperationRepo.On("FindOperationByID", ctx, int64(1)).
		Return(&domain.Operation{OperationID: 1, Name: "Loja Centro", IsActive: true, MonthlyGoal: dec(goal)}, nil).Once()
	suite.mockRevenueRepo.On("SumAmounts", ctx, int64(1), day(2025, 2, 1), day(2025, 2, 28)).
		Return(dec(total), nil).Once()
}

func (suite *GoalProgressServiceTestSuite) TestComputeProgress_QuarterOfGoal() {
	suite.expect("1000", "250.00")

	progress, err := suite.service.ComputeProgress(context.Background(), 1, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal("Loja Centro", progress.OperationName)
	suite.Equal("250.00", progress.TotalRevenue.StringFixed(2))
	suite.Equal("25.00", progress.ProgressPercent.StringFixed(2))
	suite.Equal("750.00", progress.Remaining.StringFixed(2))
	suite.Equal("2025-02", progress.ReferenceMonth)
}

func (suite *GoalProgressServiceTestSuite) TestComputeProgress_ZeroGoal() {
	suite.expect("0", "120.50")

	progress, err := suite.service.ComputeProgress(context.Background(), 1, suite.asOf)

	suite.Require().NoError(err)
	suite.True(progress.ProgressPercent.IsZero())
	suite.True(progress.Remaining.IsZero())
}

func (suite *GoalProgressServiceTestSuite) TestComputeProgress_GoalExceeded() {
	suite.expect("100", "150")

	progress, err := suite.service.ComputeProgress(context.Background(), 1, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal("150.00", progress.ProgressPercent.StringFixed(2))
	suite.True(progress.Remaining.IsZero())
}

func (suite *GoalProgressServiceTestSuite) TestComputeProgress_RoundsPercent() {
	suite.expect("300", "100")

	progress, err := suite.service.ComputeProgress(context.Background(), 1, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal("33.33", progress.ProgressPercent.StringFixed(2))
}

func (suite *GoalProgressServiceTestSuite) TestComputeProgress_UnknownOperation() {
	ctx := context.Background()
	suite.mockOperationRepo.On("FindOperationByID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ComputeProgress(ctx, 5, suite.asOf)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestGoalProgressServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalProgressServiceTestSuite))
}
