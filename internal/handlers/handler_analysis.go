package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/gin-gonic/gin"
)

type analysisHandler struct {
	goalProgressService portssvc.GoalProgressService
	analysisService     portssvc.AnalysisService
	now                 func() time.Time
}

func newAnalysisHandler(goalProgressService portssvc.GoalProgressService, analysisService portssvc.AnalysisService) *analysisHandler {
	return &analysisHandler{
		goalProgressService: goalProgressService,
		analysisService:     analysisService,
		now:                 time.Now,
	}
}

// registerAnalysisRoutes registers the goal progress and statistics routes.
func registerAnalysisRoutes(rg *gin.RouterGroup, goalProgressService portssvc.GoalProgressService, analysisService portssvc.AnalysisService) {
	h := newAnalysisHandler(goalProgressService, analysisService)

	analysis := rg.Group("/analysis")
	{
		analysis.GET("/progresso-meta/:operationId", h.getGoalProgress)
		analysis.GET("/daily-average/:operationId", h.getDailyAverage)
		analysis.GET("/forecast/:operationId", h.getForecast)
	}
}

// getGoalProgress godoc
// @Summary Monthly goal progress
// @Description Month-to-date revenue of an operation against its monthly goal. The month is the UTC month containing asOf.
// @Tags analysis
// @Produce json
// @Param operationId path int true "Operation ID"
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.GoalProgressResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid ID or date"
// @Failure 404 {object} map[string]string "Operation not found"
// @Router /analysis/progresso-meta/{operationId} [get]
func (h *analysisHandler) getGoalProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operationID, ok := parseIDParam(c, logger, "operationId")
	if !ok {
		return
	}

	var params dto.GoalProgressParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for GoalProgress", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	asOf := h.now().UTC()
	if params.AsOf != "" {
		parsed, err := domain.ParseDate(params.AsOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf: " + err.Error()})
			return
		}
		asOf = parsed
	}

	progress, err := h.goalProgressService.ComputeProgress(c.Request.Context(), operationID, asOf)
	if err != nil {
		respondError(c, logger, err, "compute goal progress")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalProgressResponse(progress))
}

// getDailyAverage godoc
// @Summary Daily revenue average
// @Description Mean daily revenue over the operation's active entries
// @Tags analysis
// @Produce json
// @Param operationId path int true "Operation ID"
// @Success 200 {object} dto.DailyAverageResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid ID"
// @Failure 404 {object} map[string]string "Operation not found or no history"
// @Failure 503 {object} map[string]string "Analysis service unavailable"
// @Router /analysis/daily-average/{operationId} [get]
func (h *analysisHandler) getDailyAverage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operationID, ok := parseIDParam(c, logger, "operationId")
	if !ok {
		return
	}

	average, err := h.analysisService.DailyAverage(c.Request.Context(), operationID)
	if err != nil {
		respondError(c, logger, err, "compute daily average")
		return
	}

	c.JSON(http.StatusOK, dto.DailyAverageResponse{
		OperationID: operationID,
		Average:     utils.FormatMoney(average),
	})
}

// getForecast godoc
// @Summary Seven day revenue forecast
// @Description Predicts revenue for the seven days after today (UTC) from same-weekday averages
// @Tags analysis
// @Produce json
// @Param operationId path int true "Operation ID"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid ID"
// @Failure 404 {object} map[string]string "Operation not found or no history"
// @Failure 503 {object} map[string]string "Analysis service unavailable"
// @Router /analysis/forecast/{operationId} [get]
func (h *analysisHandler) getForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operationID, ok := parseIDParam(c, logger, "operationId")
	if !ok {
		return
	}

	points, err := h.analysisService.Forecast(c.Request.Context(), operationID)
	if err != nil {
		respondError(c, logger, err, "compute forecast")
		return
	}

	c.JSON(http.StatusOK, dto.ToForecastResponse(operationID, points))
}
