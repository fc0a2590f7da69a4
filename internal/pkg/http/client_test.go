package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lapakin/lapakin/internal/pkg/circuitbreaker"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/internal/pkg/requestcontext"
)

func TestMain(m *testing.M) {
	logger.SetGlobalLogger(&logger.ZapLogger{Logger: zap.NewNop()})
	os.Exit(m.Run())
}

func testAPIKeyConfig() *models.APIKeyConfig {
	return &models.APIKeyConfig{
		BillingService: "billing-key",
		CoreService:    "core-key",
		OrderService:   "order-key",
		PortalService:  "portal-key",
	}
}

func TestNewAPIKeyClient(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		expectedKey string
	}{
		{
			name:        "billing service",
			serviceName: "billing-service",
			expectedKey: "billing-key",
		},
		{
			name:        "core service",
			serviceName: "core-service",
			expectedKey: "core-key",
		},
		{
			name:        "order service",
			serviceName: "order-service",
			expectedKey: "order-key",
		},
		{
			name:        "portal service",
			serviceName: "portal-service",
			expectedKey: "portal-key",
		},
		{
			name:        "unknown service",
			serviceName: "mystery-service",
			expectedKey: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewAPIKeyClient(testAPIKeyConfig(), tt.serviceName, "http://localhost:8080")

			require.NotNil(t, client)
			assert.Equal(t, tt.expectedKey, client.apiKey)
			assert.Equal(t, tt.serviceName, client.serviceName)
			assert.Equal(t, DefaultTimeout, client.client.Timeout)
			assert.NotNil(t, client.retrier)
			assert.NotNil(t, client.breakers)
		})
	}
}

func TestAPIKeyClient_Get(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/internal/organizations/org-1", r.URL.Path)
		assert.Equal(t, "billing-key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	resp, err := client.Get(context.Background(), "/internal/organizations/org-1")

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))
}

func TestAPIKeyClient_PostJSON(t *testing.T) {
	type subscriptionRecord struct {
		OrganizationID string `json:"organization_id"`
		PlanCode       string `json:"plan_code"`
	}

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received subscriptionRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "org-1", received.OrganizationID)
		assert.Equal(t, "pro_monthly", received.PlanCode)

		w.WriteHeader(nethttp.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"rec-9"}}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	var result struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	err := client.PostJSON(context.Background(), "/internal/subscriptions", subscriptionRecord{
		OrganizationID: "org-1",
		PlanCode:       "pro_monthly",
	}, &result)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "rec-9", result.Data.ID)
}

func TestAPIKeyClient_PutJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPut, r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"active"}`, string(body))

		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	err := client.PutJSON(context.Background(), "/internal/connect/org-1", map[string]string{"status": "active"}, nil)

	assert.NoError(t, err)
}

func TestAPIKeyClient_GetJSON_ClientError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(nethttp.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"organization not found"}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	err := client.GetJSON(context.Background(), "/internal/organizations/missing", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error: 404")
	// 4xx responses are caller errors and must not be retried
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestAPIKeyClient_RetriesServerErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(nethttp.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	var result struct {
		Success bool `json:"success"`
	}
	err := client.GetJSON(context.Background(), "/internal/organizations/org-1", &result)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestAPIKeyClient_ServerErrorExhaustsRetries(t *testing.T) {
	var hits int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(nethttp.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	_, err := client.Get(context.Background(), "/internal/organizations/org-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry limit exceeded")

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, nethttp.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestAPIKeyClient_CircuitBreakerOpens(t *testing.T) {
	var hits int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	for i := 0; i < 5; i++ {
		_, err := client.Get(context.Background(), "/internal/organizations/org-1")
		require.Error(t, err)
	}

	stats := client.CircuitBreakerStats()
	require.Contains(t, stats, server.URL)
	require.Equal(t, circuitbreaker.StateOpen.String(), stats[server.URL].State)

	hitsBefore := atomic.LoadInt32(&hits)
	_, err := client.Get(context.Background(), "/internal/organizations/org-1")

	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, hitsBefore, atomic.LoadInt32(&hits))
}

func TestAPIKeyClient_RequestIDPropagated(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "req-123", r.Header.Get("X-Request-ID"))
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", server.URL)

	ctx := requestcontext.WithRequestID(context.Background(), "req-123")
	resp, err := client.Get(ctx, "/internal/organizations/org-1")

	require.NoError(t, err)
	resp.Body.Close()
}

func TestAPIKeyClient_NoAPIKeyHeaderWhenUnknownService(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Empty(t, r.Header.Get(APIKeyHeader))
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(testAPIKeyConfig(), "mystery-service", server.URL)

	resp, err := client.Get(context.Background(), "/anything")

	require.NoError(t, err)
	resp.Body.Close()
}

func TestAPIKeyClient_SetTimeout(t *testing.T) {
	client := NewAPIKeyClient(testAPIKeyConfig(), "billing-service", "http://localhost:8080")

	client.SetTimeout(5 * time.Second)

	assert.Equal(t, 5*time.Second, client.client.Timeout)
	assert.NoError(t, client.Close())
}

func TestHTTPError_Error(t *testing.T) {
	err := &HTTPError{StatusCode: 503, Status: "503 Service Unavailable"}

	assert.Equal(t, "server returned HTTP 503 Service Unavailable", err.Error())
}
