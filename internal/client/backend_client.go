package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/omkarsindha/GSM-Alarm/internal/models"
)

const (
	PathSensorConfig   = "/sensor-config"
	PathHistory        = "/get-history"
	PathConfigureAlarm = "/configure-alarm"
	PathAddPhoneNumber = "/add-phone-number"
	PathDeleteNumber   = "/delete-number/"
	PathClearHistory   = "/clear_history"
	PathUpdateSensor   = "/update_sensor"
)

// BackendClient monitor backend API client. Calls are never retried.
type BackendClient struct {
	httpClient *resty.Client
	baseURL    string
	logger     *zap.Logger
}

// NewBackendClient timeout 0 leaves calls bounded only by their context.
func NewBackendClient(baseURL string, timeout time.Duration, logger *zap.Logger) *BackendClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &BackendClient{
		httpClient: client,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// BaseURL backend root the client talks to
func (c *BackendClient) BaseURL() string {
	return c.baseURL
}

// GetSensorConfig GET /sensor-config
func (c *BackendClient) GetSensorConfig(ctx context.Context) (*models.SensorConfig, error) {
	var cfg models.SensorConfig
	if err := c.getJSON(ctx, PathSensorConfig, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetHistory GET /get-history, in server order
func (c *BackendClient) GetHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.getJSON(ctx, PathHistory, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ConfigureAlarm POST /configure-alarm
func (c *BackendClient) ConfigureAlarm(ctx context.Context, req models.AlarmConfigRequest) error {
	return c.submit(ctx, PathConfigureAlarm, req)
}

// AddPhoneNumber POST /add-phone-number
func (c *BackendClient) AddPhoneNumber(ctx context.Context, req models.PhoneNumberRequest) error {
	return c.submit(ctx, PathAddPhoneNumber, req)
}

// DeleteNumber GET /delete-number/{key}; key is the entry's stable id or its 1-based position
func (c *BackendClient) DeleteNumber(ctx context.Context, key string) error {
	return c.navigate(ctx, PathDeleteNumber+url.PathEscape(key))
}

// UpdateSensor POST /update_sensor. The backend reads a plain form and
// answers with a redirect, so only the status is checked.
func (c *BackendClient) UpdateSensor(ctx context.Context, req models.UpdateSensorRequest) error {
	endpoint := http.MethodPost + " " + PathUpdateSensor
	c.logger.Debug("Submitting to backend", zap.String("endpoint", endpoint))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Accept", "*/*").
		SetFormData(req.FormData()).
		Post(PathUpdateSensor)
	return c.checkResponse(endpoint, resp, err)
}

// ClearHistory GET /clear_history
func (c *BackendClient) ClearHistory(ctx context.Context) error {
	return c.navigate(ctx, PathClearHistory)
}

func (c *BackendClient) getJSON(ctx context.Context, path string, out any) error {
	endpoint := http.MethodGet + " " + path
	c.logger.Debug("Calling backend", zap.String("endpoint", endpoint))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(path)
	if err := c.checkResponse(endpoint, resp, err); err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		c.logger.Error("Failed to decode backend response",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode(), Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (c *BackendClient) submit(ctx context.Context, path string, body any) error {
	endpoint := http.MethodPost + " " + path
	c.logger.Debug("Submitting to backend", zap.String("endpoint", endpoint))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err := c.checkResponse(endpoint, resp, err); err != nil {
		return err
	}

	var result models.SubmitResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		c.logger.Error("Failed to decode backend response",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode(), Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if !result.Success {
		c.logger.Warn("Backend rejected request",
			zap.String("endpoint", endpoint),
			zap.String("message", result.Message),
		)
		return &BusinessError{Endpoint: endpoint, Message: result.Message}
	}
	return nil
}

// navigate issues a link-style GET whose response body is not an API payload.
func (c *BackendClient) navigate(ctx context.Context, path string) error {
	endpoint := http.MethodGet + " " + path
	c.logger.Debug("Calling backend", zap.String("endpoint", endpoint))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get(path)
	return c.checkResponse(endpoint, resp, err)
}

func (c *BackendClient) checkResponse(endpoint string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("Backend call failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	if resp.IsError() {
		c.logger.Error("Backend returned error status",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode()),
		)
		return &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode(), Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}
	return nil
}
