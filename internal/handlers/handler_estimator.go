package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/gin-gonic/gin"
)

// estimatorHandler exposes an Estimator over HTTP for the analysis service.
type estimatorHandler struct {
	estimator portssvc.Estimator
}

func newEstimatorHandler(estimator portssvc.Estimator) *estimatorHandler {
	return &estimatorHandler{estimator: estimator}
}

func registerEstimatorRoutes(r gin.IRouter, estimator portssvc.Estimator) {
	h := newEstimatorHandler(estimator)

	analysis := r.Group("/analysis")
	{
		analysis.POST("/average", h.average)
		analysis.POST("/forecast", h.forecast)
	}
}

// average godoc
// @Summary Mean of values
// @Description Arithmetic mean rounded to two decimals, half away from zero
// @Tags estimator
// @Accept json
// @Produce json
// @Param request body dto.AverageRequest true "Values"
// @Success 200 {object} dto.AverageResponse
// @Failure 400 {object} map[string]string "Bad Request - Empty or malformed values"
// @Router /analysis/average [post]
func (h *estimatorHandler) average(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Average", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	average, err := h.estimator.Average(c.Request.Context(), req.Values)
	if err != nil {
		respondError(c, logger, err, "compute average")
		return
	}

	c.JSON(http.StatusOK, dto.AverageResponse{Average: average})
}

// forecast godoc
// @Summary Seven day forecast
// @Description Same-weekday average forecast for the seven days after today (UTC)
// @Tags estimator
// @Accept json
// @Produce json
// @Param request body dto.ForecastRequest true "Revenue history"
// @Success 200 {object} dto.EstimatorForecastResponse
// @Failure 400 {object} map[string]string "Bad Request - Empty or malformed history"
// @Router /analysis/forecast [post]
func (h *estimatorHandler) forecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Forecast", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	history, err := dto.FromHistoryPoints(req.History)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history date: " + err.Error()})
		return
	}

	points, err := h.estimator.Forecast(c.Request.Context(), history)
	if err != nil {
		respondError(c, logger, err, "compute forecast")
		return
	}

	c.JSON(http.StatusOK, dto.EstimatorForecastResponse{Forecast: dto.ToEstimatedPoints(points)})
}
