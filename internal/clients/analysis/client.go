// Package analysis is the HTTP client of the analysis microservice.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/apperrors"
	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/dto"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/shopspring/decimal"
)

const (
	averagePath  = "/analysis/average"
	forecastPath = "/analysis/forecast"

	maxErrorBody = 4 << 10
)

// Client is a remote Estimator. Failures to reach the service, timeouts and
// 5xx answers surface as apperrors.ErrUnavailable. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the service at baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ portssvc.Estimator = (*Client)(nil)

// Average asks the service for the rounded mean of values.
func (c *Client) Average(ctx context.Context, values []decimal.Decimal) (decimal.Decimal, error) {
	var resp dto.AverageResponse
	if err := c.makeRequest(ctx, http.MethodPost, averagePath, dto.AverageRequest{Values: values}, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Average, nil
}

// Forecast asks the service for the seven day forecast of history.
func (c *Client) Forecast(ctx context.Context, history []domain.RevenuePoint) ([]domain.ForecastPoint, error) {
	var resp dto.EstimatorForecastResponse
	req := dto.ForecastRequest{History: dto.ToHistoryPoints(history)}
	if err := c.makeRequest(ctx, http.MethodPost, forecastPath, req, &resp); err != nil {
		return nil, err
	}

	points, err := dto.FromEstimatedPoints(resp.Forecast)
	if err != nil {
		return nil, apperrors.NewInternalServerError("analysis service returned a malformed forecast", err)
	}
	return points, nil
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, body, response any) error {
	fullURL := c.baseURL + endpoint

	reqBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id, ok := middleware.RequestIDFromCtx(ctx); ok {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Connection refused, DNS failure, client timeout and context cancellation all land here.
		logger.Warn("Analysis service request failed",
			slog.String("url", fullURL),
			slog.String("error", err.Error()))
		return apperrors.NewUnavailableError("analysis service is unavailable", err)
	}
	defer resp.Body.Close()

	logger.Debug("Analysis service responded",
		slog.String("url", fullURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return apperrors.NewUnavailableError("analysis service is unavailable", err)
			}
			return apperrors.NewInternalServerError("failed to decode analysis service response", err)
		}
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	statusErr := fmt.Errorf("analysis service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	if resp.StatusCode >= 500 {
		return apperrors.NewUnavailableError("analysis service is unavailable", statusErr)
	}
	// A 4xx means the service rejected our payload.
	return apperrors.NewInternalServerError("analysis service rejected the request", statusErr)
}
