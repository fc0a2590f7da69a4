package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/lapakin/lapakin/internal/pkg/circuitbreaker"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	"github.com/lapakin/lapakin/internal/pkg/requestcontext"
	"github.com/lapakin/lapakin/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyClient is an HTTP client for service-to-service calls. Every request
// carries the calling service's API key and the request ID from the context,
// and runs behind a circuit breaker with retries for transient failures.
type APIKeyClient struct {
	client      *nethttp.Client
	apiKey      string
	baseURL     string
	serviceName string
	retrier     *retry.Retrier
	breakers    *circuitbreaker.Manager
}

// NewAPIKeyClient creates an HTTP client that authenticates as serviceName
// against the service at baseURL.
func NewAPIKeyClient(config *models.APIKeyConfig, serviceName, baseURL string) *APIKeyClient {
	var apiKey string

	switch serviceName {
	case "core-service":
		apiKey = config.CoreService
	case "billing-service":
		apiKey = config.BillingService
	case "order-service":
		apiKey = config.OrderService
	case "portal-service":
		apiKey = config.PortalService
	default:
		logger.Warn("Unknown service name for API key", logger.String("service", serviceName))
	}

	log := logger.GetGlobalLogger()

	return &APIKeyClient{
		client: &nethttp.Client{
			Timeout: DefaultTimeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		serviceName: serviceName,
		retrier:     retry.New(clientRetryConfig(), log),
		breakers:    circuitbreaker.NewManager(log),
	}
}

// clientRetryConfig tightens the retry defaults for interactive
// service-to-service calls: fewer attempts, a short delay ceiling, and only
// transient network failures retried.
func clientRetryConfig() retry.Config {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = 2
	cfg.MaxDelay = 2 * time.Second
	cfg.RetryableFunc = retry.NetworkRetryableFunc()
	return cfg
}

// SetTimeout sets the HTTP client timeout
func (c *APIKeyClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// Get performs a GET request with API key authentication
func (c *APIKeyClient) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with API key authentication
func (c *APIKeyClient) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// Put performs a PUT request with API key authentication
func (c *APIKeyClient) Put(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPut, endpoint, body)
}

// Delete performs a DELETE request with API key authentication
func (c *APIKeyClient) Delete(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodDelete, endpoint, nil)
}

// PostJSON performs a POST request and decodes the JSON response into result
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// PutJSON performs a PUT request and decodes the JSON response into result
func (c *APIKeyClient) PutJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Put(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *APIKeyClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// doRequest performs the HTTP request behind the circuit breaker. The request
// is rebuilt on every retry attempt so the body can be resent, and each
// attempt is traced as a New Relic external segment. Responses with 5xx
// status codes are converted to errors so the retrier and breaker see them
// as failures; 4xx responses are returned to the caller untouched.
func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to marshal request body",
				logger.String("method", method),
				logger.String("url", url),
				logger.Err(err))
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var resp *nethttp.Response
	err := c.breakers.Execute(ctx, c.baseURL, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			var reqBody io.Reader
			if payload != nil {
				reqBody = bytes.NewReader(payload)
			}

			req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
			if err != nil {
				return fmt.Errorf("failed to create request: %w", err)
			}

			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json")
			if c.apiKey != "" {
				req.Header.Set(APIKeyHeader, c.apiKey)
			}
			if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
				req.Header.Set("X-Request-ID", requestID)
			}

			attempt, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
				return c.client.Do(req)
			})
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}

			if attempt.StatusCode >= 500 {
				attempt.Body.Close()
				return &HTTPError{
					StatusCode: attempt.StatusCode,
					Status:     attempt.Status,
				}
			}

			resp = attempt
			return nil
		})
	})
	if err != nil {
		logger.ErrorCtx(ctx, "HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, err
	}

	logger.DebugCtx(ctx, "HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}

// CircuitBreakerStats returns statistics for the client's circuit breakers
func (c *APIKeyClient) CircuitBreakerStats() map[string]circuitbreaker.CircuitBreakerStats {
	return c.breakers.GetStats()
}

// Close releases idle connections held by the underlying transport
func (c *APIKeyClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// HTTPError represents an upstream HTTP failure status
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned HTTP %s", e.Status)
}
