package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEstimatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Friday
	now := func() time.Time { return time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC) }
	handlers.RegisterAnalysisServiceRoutes(r, services.NewLocalEstimator(now))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimatorAverage(t *testing.T) {
	r := newEstimatorRouter()

	w := postJSON(r, "/analysis/average", `{"values":[10, "20", 30.33]}`)

	require.Equal(t, http.StatusOK, w.Code)
	var res dto.AverageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Average.Equal(decimal.RequireFromString("20.11")), res.Average.String())
}

func TestEstimatorAverage_RejectsEmpty(t *testing.T) {
	r := newEstimatorRouter()

	for _, body := range []string{`{"values":[]}`, `{}`, `{"values":["abc"]}`} {
		w := postJSON(r, "/analysis/average", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestEstimatorForecast(t *testing.T) {
	r := newEstimatorRouter()

	// Two Mondays and one Wednesday of history.
	w := postJSON(r, "/analysis/forecast", `{"history":[
		{"date":"2024-12-30","amount":100},
		{"date":"2025-01-06","amount":200},
		{"date":"2025-01-08","amount":80}
	]}`)

	require.Equal(t, http.StatusOK, w.Code)
	var res dto.EstimatorForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Forecast, 7)

	assert.Equal(t, "2025-01-11", res.Forecast[0].Date)
	assert.Equal(t, "2025-01-17", res.Forecast[6].Date)

	byDate := make(map[string]decimal.Decimal, len(res.Forecast))
	for _, p := range res.Forecast {
		byDate[p.Date] = p.PredictedAmount
	}
	assert.True(t, byDate["2025-01-13"].Equal(decimal.NewFromInt(150)), "monday")
	assert.True(t, byDate["2025-01-15"].Equal(decimal.NewFromInt(80)), "wednesday")
	assert.True(t, byDate["2025-01-11"].IsZero(), "saturday has no history")
}

func TestEstimatorForecast_RejectsBadHistory(t *testing.T) {
	r := newEstimatorRouter()

	for _, body := range []string{
		`{"history":[]}`,
		`{"history":[{"date":"2025-13-01","amount":10}]}`,
		`{"history":[{"amount":10}]}`,
	} {
		w := postJSON(r, "/analysis/forecast", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestAnalysisServiceHealth(t *testing.T) {
	r := newEstimatorRouter()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
