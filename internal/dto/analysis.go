package dto

import (
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/shopspring/decimal"
)

// GoalProgressResponse defines the month-to-date progress returned for an operation.
type GoalProgressResponse struct {
	OperationName   string `json:"operationName"`
	MonthlyGoal     string `json:"monthlyGoal"`
	TotalRevenue    string `json:"totalRevenue"`
	ProgressPercent string `json:"progressPercent"`
	Remaining       string `json:"remaining"`
	ReferenceMonth  string `json:"referenceMonth"`
}

// ToGoalProgressResponse converts a domain.GoalProgress to GoalProgressResponse DTO
func ToGoalProgressResponse(p *domain.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		OperationName:   p.OperationName,
		MonthlyGoal:     utils.FormatMoney(p.MonthlyGoal),
		TotalRevenue:    utils.FormatMoney(p.TotalRevenue),
		ProgressPercent: utils.FormatMoney(p.ProgressPercent),
		Remaining:       utils.FormatMoney(p.Remaining),
		ReferenceMonth:  p.ReferenceMonth,
	}
}

// GoalProgressParams defines query parameters for the goal progress endpoint.
type GoalProgressParams struct {
	AsOf string `form:"asOf" binding:"omitempty,dateonly"` // Defaults to today (UTC)
}

// DailyAverageResponse is returned by the daily average endpoint.
type DailyAverageResponse struct {
	OperationID int64  `json:"operationId"`
	Average     string `json:"average"`
}

// ForecastPointResponse is one predicted day.
type ForecastPointResponse struct {
	Date            string `json:"date"`
	PredictedAmount string `json:"predictedAmount"`
}

// ForecastResponse is returned by the forecast endpoint.
type ForecastResponse struct {
	OperationID int64                   `json:"operationId"`
	Forecast    []ForecastPointResponse `json:"forecast"`
}

// ToForecastResponse converts predicted points to a ForecastResponse DTO
func ToForecastResponse(operationID int64, points []domain.ForecastPoint) ForecastResponse {
	res := ForecastResponse{OperationID: operationID, Forecast: make([]ForecastPointResponse, len(points))}
	for i, p := range points {
		res.Forecast[i] = ForecastPointResponse{
			Date:            p.Date.Format(domain.DateLayout),
			PredictedAmount: utils.FormatMoney(p.PredictedAmount),
		}
	}
	return res
}

// The types below form the wire contract of the analysis microservice.

// AverageRequest asks the estimator for the mean of values.
type AverageRequest struct {
	Values []decimal.Decimal `json:"values" binding:"required,min=1"`
}

// AverageResponse carries the rounded mean.
type AverageResponse struct {
	Average decimal.Decimal `json:"average"`
}

// HistoryPoint is one (date, amount) pair sent to the estimator.
type HistoryPoint struct {
	Date   string          `json:"date" binding:"required,dateonly"`
	Amount decimal.Decimal `json:"amount"`
}

// ForecastRequest asks the estimator for a seven day forecast.
type ForecastRequest struct {
	History []HistoryPoint `json:"history" binding:"required,min=1,dive"`
}

// EstimatedPoint is one predicted day on the estimator wire.
type EstimatedPoint struct {
	Date            string          `json:"date"`
	PredictedAmount decimal.Decimal `json:"predictedAmount"`
}

// EstimatorForecastResponse carries the predicted points.
type EstimatorForecastResponse struct {
	Forecast []EstimatedPoint `json:"forecast"`
}

// ToHistoryPoints converts revenue history to its wire form.
func ToHistoryPoints(history []domain.RevenuePoint) []HistoryPoint {
	res := make([]HistoryPoint, len(history))
	for i, p := range history {
		res[i] = HistoryPoint{Date: p.Date.Format(domain.DateLayout), Amount: p.Amount}
	}
	return res
}

// FromHistoryPoints parses wire history back into revenue points.
func FromHistoryPoints(points []HistoryPoint) ([]domain.RevenuePoint, error) {
	res := make([]domain.RevenuePoint, len(points))
	for i, p := range points {
		date, err := domain.ParseDate(p.Date)
		if err != nil {
			return nil, err
		}
		res[i] = domain.RevenuePoint{Date: date, Amount: p.Amount}
	}
	return res, nil
}

// ToEstimatedPoints converts forecast points to their wire form.
func ToEstimatedPoints(points []domain.ForecastPoint) []EstimatedPoint {
	res := make([]EstimatedPoint, len(points))
	for i, p := range points {
		res[i] = EstimatedPoint{Date: p.Date.Format(domain.DateLayout), PredictedAmount: p.PredictedAmount}
	}
	return res
}

// FromEstimatedPoints parses wire forecast points.
func FromEstimatedPoints(points []EstimatedPoint) ([]domain.ForecastPoint, error) {
	res := make([]domain.ForecastPoint, len(points))
	for i, p := range points {
		date, err := domain.ParseDate(p.Date)
		if err != nil {
			return nil, err
		}
		res[i] = domain.ForecastPoint{Date: date, PredictedAmount: p.PredictedAmount}
	}
	return res, nil
}
