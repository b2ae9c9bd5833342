package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastDays is the fixed horizon of a revenue forecast.
const ForecastDays = 7

// ForecastPoint is the predicted revenue for one future calendar day.
type ForecastPoint struct {
	Date            time.Time       `json:"date"`
	PredictedAmount decimal.Decimal `json:"predictedAmount"`
}
