package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type operationHandler struct {
	operationService portssvc.OperationSvcFacade
}

func newOperationHandler(operationService portssvc.OperationSvcFacade) *operationHandler {
	return &operationHandler{operationService: operationService}
}

// registerOperationRoutes registers routes related to operations.
func registerOperationRoutes(rg *gin.RouterGroup, operationService portssvc.OperationSvcFacade) {
	h := newOperationHandler(operationService)

	operations := rg.Group("/operacoes")
	{
		operations.GET("", h.listOperations)
		operations.POST("", h.createOperation)
		operations.GET("/:id", h.getOperation)
		operations.PUT("/:id", h.updateOperation)
		operations.DELETE("/:id", h.deactivateOperation)
	}
}

// listOperations godoc
// @Summary List operations
// @Description Retrieves every operation, active or not, ordered by name
// @Tags operations
// @Produce json
// @Success 200 {array} dto.OperationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operacoes [get]
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operations, err := h.operationService.ListOperations(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list operations")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOperationResponse(operations))
}

// createOperation godoc
// @Summary Create a new operation
// @Description Registers a new active operation with an optional monthly goal
// @Tags operations
// @Accept json
// @Produce json
// @Param operation body dto.CreateOperationRequest true "Operation details"
// @Success 201 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid input"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operacoes [post]
func (h *operationHandler) createOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOperation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operation, err := h.operationService.CreateOperation(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create operation")
		return
	}

	logger.Info("Operation created", slog.Int64("operation_id", operation.OperationID))
	c.JSON(http.StatusCreated, dto.ToOperationResponse(operation))
}

// getOperation godoc
// @Summary Get an operation
// @Tags operations
// @Produce json
// @Param id path int true "Operation ID"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid ID"
// @Failure 404 {object} map[string]string "Operation not found"
// @Router /operacoes/{id} [get]
func (h *operationHandler) getOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	operation, err := h.operationService.GetOperationByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "get operation")
		return
	}

	c.JSON(http.StatusOK, dto.ToOperationResponse(operation))
}

// updateOperation godoc
// @Summary Update an operation
// @Description Replaces name, description and monthly goal. The active flag is changed only when sent.
// @Tags operations
// @Accept json
// @Produce json
// @Param id path int true "Operation ID"
// @Param operation body dto.UpdateOperationRequest true "Operation details"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Bad Request - Invalid input"
// @Failure 404 {object} map[string]string "Operation not found"
// @Router /operacoes/{id} [put]
func (h *operationHandler) updateOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	var req dto.UpdateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOperation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operation, err := h.operationService.UpdateOperation(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "update operation")
		return
	}

	c.JSON(http.StatusOK, dto.ToOperationResponse(operation))
}

// deactivateOperation godoc
// @Summary Deactivate an operation
// @Description Marks the operation inactive. Its revenue history is kept.
// @Tags operations
// @Param id path int true "Operation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad Request - Invalid ID"
// @Failure 404 {object} map[string]string "Operation not found"
// @Router /operacoes/{id} [delete]
func (h *operationHandler) deactivateOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.operationService.DeactivateOperation(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "deactivate operation")
		return
	}

	logger.Info("Operation deactivated", slog.Int64("operation_id", id))
	c.Status(http.StatusNoContent)
}
