package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type revenueHandler struct {
	revenueService portssvc.RevenueSvcFacade
}

func newRevenueHandler(revenueService portssvc.RevenueSvcFacade) *revenueHandler {
	return &revenueHandler{revenueService: revenueService}
}

// registerRevenueRoutes registers routes related to revenue entries.
func registerRevenueRoutes(rg *gin.RouterGroup, revenueService portssvc.RevenueSvcFacade) {
	h := newRevenueHandler(revenueService)

	entries := rg.Group("/faturamentos")
	{
		entries.GET("", h.listRecentEntries)
		entries.GET("/pesquisa", h.searchEntries)
		entries.POST("", h.createEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.cancelEntry)
	}
}

// listRecentEntries godoc
// @Summary List recent revenue entries
// @Description Returns the latest active entries, newest date first, with their operation attached
// @Tags revenue
// @Produce json
// @Param limit query int false "Maximum number of entries (default 50, max 500)"
// @Success 200 {array} dto.RevenueEntryResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /faturamentos [get]
func (h *revenueHandler) listRecentEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecentEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListRecentEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.revenueService.ListRecent(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "list revenue entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRevenueEntryResponse(entries))
}

// searchEntries godoc
// @Summary Search revenue entries
// @Description Paginated search over active entries by operation and inclusive date range
// @Tags revenue
// @Produce json
// @Param operationId query int false "Operation ID"
// @Param startDate query string false "First date (YYYY-MM-DD)"
// @Param endDate query string false "Last date (YYYY-MM-DD)"
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.RevenueEntryPageResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /faturamentos/pesquisa [get]
func (h *revenueHandler) searchEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchRevenueEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for SearchEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.revenueService.SearchEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "search revenue entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueEntryPageResponse(page))
}

// createEntry godoc
// @Summary Record daily revenue
// @Description Records one day's revenue for an active operation. Only one active entry may exist per operation and date.
// @Tags revenue
// @Accept json
// @Produce json
// @Param entry body dto.CreateRevenueEntryRequest true "Revenue entry"
// @Success 201 {object} dto.RevenueEntryResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid input or future date"
// @Failure 404 {object} map[string]string "Operation not found or inactive"
// @Failure 409 {object} map[string]string "An entry already exists for this date"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /faturamentos [post]
func (h *revenueHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRevenueEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + err.Error()})
		return
	}

	entry, err := h.revenueService.CreateEntry(c.Request.Context(), req.OperationID, date, req.Amount)
	if err != nil {
		respondError(c, logger, err, "create revenue entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRevenueEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a revenue entry
// @Description Changes the date and amount of an entry. The owning operation cannot change.
// @Tags revenue
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.UpdateRevenueEntryRequest true "New values"
// @Success 200 {object} dto.RevenueEntryResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid input or future date"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "An entry already exists for the new date"
// @Router /faturamentos/{id} [put]
func (h *revenueHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	var req dto.UpdateRevenueEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + err.Error()})
		return
	}

	entry, err := h.revenueService.UpdateEntry(c.Request.Context(), id, date, req.Amount)
	if err != nil {
		respondError(c, logger, err, "update revenue entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueEntryResponse(entry))
}

// cancelEntry godoc
// @Summary Cancel a revenue entry
// @Description Soft-deletes an entry. It stops counting toward totals and frees its date.
// @Tags revenue
// @Param id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Entry already cancelled"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /faturamentos/{id} [delete]
func (h *revenueHandler) cancelEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.revenueService.CancelEntry(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "cancel revenue entry")
		return
	}

	c.Status(http.StatusNoContent)
}
