package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/salwa-health/rentalboard/internal/domain/model"
)

// ErrNoOrders indicates the catalog has no rental orders for seeding.
var ErrNoOrders = errors.New("catalog has no orders")

// TooManyRequestsError represents a rate limiting signal from the platform.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes read-only access to the platform rental catalog. The
// workflow never writes through it; status changes stay local.
type Client interface {
	FetchOrders(ctx context.Context) ([]model.Order, error)
}

// HTTPClient implements Client via the platform REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// orderPayload mirrors one order in the catalog JSON response.
type orderPayload struct {
	Number         string `json:"orderNo"`
	Title          string `json:"orderTitle"`
	DeviceName     string `json:"deviceName"`
	FDANumber      string `json:"fdaNumber"`
	DeviceType     string `json:"deviceType"`
	ApprovalNumber string `json:"approvalNumber"`
	Date           string `json:"date"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	City           string `json:"city"`
	Status         string `json:"status"`
}

// NewHTTPClient creates an HTTP catalog client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// FetchOrders queries the catalog for the rental order seed list.
func (c *HTTPClient) FetchOrders(ctx context.Context) ([]model.Order, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/v1/rental-services/orders")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var payload []orderPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		orders := make([]model.Order, 0, len(payload))
		for _, p := range payload {
			orders = append(orders, toOrder(p))
		}
		return orders, nil
	case http.StatusNoContent:
		return nil, ErrNoOrders
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}
}

func toOrder(p orderPayload) model.Order {
	status := model.Status(p.Status)
	if !status.Valid() {
		status = model.StatusPending
	}
	return model.Order{
		Number:         p.Number,
		Title:          p.Title,
		DeviceName:     p.DeviceName,
		FDANumber:      p.FDANumber,
		DeviceType:     p.DeviceType,
		ApprovalNumber: p.ApprovalNumber,
		Date:           p.Date,
		Country:        p.Country,
		Region:         p.Region,
		City:           p.City,
		Status:         status,
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
