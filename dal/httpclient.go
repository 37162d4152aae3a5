package dal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fleetdash-backend/utils/logger"

	"github.com/tidwall/gjson"
)

// UpstreamError is a non-2xx response from an upstream microservice. Message
// carries the server-provided reason when one could be extracted from the
// body, otherwise a generic HTTP status message.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service returned %d: %s", e.Service, e.StatusCode, e.Message)
}

// ServiceClient is an HTTP client bound to one upstream service base URL.
// Every request runs under a per-request timeout derived from configuration.
type ServiceClient struct {
	service string
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  logger.Logger
}

// NewServiceClient creates a client for the named upstream service
func NewServiceClient(service, baseURL string, timeout time.Duration, log logger.Logger) *ServiceClient {
	return &ServiceClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// GetJSON performs a GET against the service and decodes the JSON response
// into result. Non-2xx responses become an *UpstreamError.
func (c *ServiceClient) GetJSON(ctx context.Context, path string, query url.Values, result interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorf("Request to %s service failed: %v", c.service, err)
		return fmt.Errorf("%s service unreachable: %w", c.service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s service response: %w", c.service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upErr := &UpstreamError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body, resp.StatusCode),
		}
		c.logger.Warnf("Upstream error from %s: %v", c.service, upErr)
		return upErr
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode %s service response: %w", c.service, err)
	}

	return nil
}

// extractErrorMessage pulls a human-readable message out of an upstream error
// body. Upstreams are not uniform, so a few common shapes are probed before
// falling back to the HTTP status text.
func extractErrorMessage(body []byte, statusCode int) string {
	for _, key := range []string{"message", "error.details", "error"} {
		if v := gjson.GetBytes(body, key); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return http.StatusText(statusCode)
}
