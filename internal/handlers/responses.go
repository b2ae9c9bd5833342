package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError writes the status apperrors.StatusCode assigns to err. Server
// side failures get a generic body; the cause only goes to the log.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)
	switch {
	case status == http.StatusServiceUnavailable:
		logger.Warn("Dependency unavailable while trying to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Analysis service is unavailable, try again later"})
	case status >= http.StatusInternalServerError:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + action})
	default:
		logger.Warn("Request rejected while trying to "+action, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": clientMessage(err)})
	}
}

func clientMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// parseIDParam reads a positive int64 path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		logger.Warn("Invalid ID path parameter", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
