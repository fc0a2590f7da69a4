package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Subscription created successfully",
			data:       map[string]interface{}{"org_id": "42", "plan": "growth"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Payout settled",
			data:       nil,
		},
		{
			name:       "Success with empty message",
			statusCode: http.StatusOK,
			message:    "",
			data:       "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		errorMessage string
	}{
		{
			name:         "Internal server error",
			statusCode:   http.StatusInternalServerError,
			errorMessage: "provider call failed",
		},
		{
			name:         "Bad request",
			statusCode:   http.StatusBadRequest,
			errorMessage: "unknown plan",
		},
		{
			name:         "Empty error message",
			statusCode:   http.StatusNotFound,
			errorMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := ErrorResponseHandler(c, tt.statusCode, tt.errorMessage)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.errorMessage, response.Error)
			assert.Equal(t, tt.statusCode, response.Code)
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(echo.Context, string) error
		message    string
		wantCode   int
		wantError  string
	}{
		{"Bad request", BadRequestResponse, "invalid payload", http.StatusBadRequest, "invalid payload"},
		{"Unauthorized default message", UnauthorizedResponse, "", http.StatusUnauthorized, "Unauthorized"},
		{"Forbidden default message", ForbiddenResponse, "", http.StatusForbidden, "Forbidden"},
		{"Not found custom message", NotFoundResponse, "organization not found", http.StatusNotFound, "organization not found"},
		{"Conflict default message", ConflictResponse, "", http.StatusConflict, "Conflict"},
		{"Internal error default message", InternalServerErrorResponse, "", http.StatusInternalServerError, "Internal server error"},
		{"Service unavailable default message", ServiceUnavailableResponse, "", http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tt.fn(c, tt.message)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantError, response.Error)
			assert.Equal(t, tt.wantCode, response.Code)
		})
	}
}

func TestParseJSONResponse(t *testing.T) {
	tests := []struct {
		name        string
		respBody    []byte
		target      interface{}
		expectError bool
		expected    interface{}
	}{
		{
			name:        "Valid response with string data",
			respBody:    []byte(`{"success": true, "message": "ok", "data": "cus_123"}`),
			target:      new(string),
			expectError: false,
			expected:    "cus_123",
		},
		{
			name:        "Valid response with map data",
			respBody:    []byte(`{"success": true, "data": {"id": "42", "plan": "starter"}}`),
			target:      new(map[string]interface{}),
			expectError: false,
			expected:    map[string]interface{}{"id": "42", "plan": "starter"},
		},
		{
			name:        "Error response",
			respBody:    []byte(`{"success": false, "error": "organization not found"}`),
			target:      new(string),
			expectError: true,
			expected:    nil,
		},
		{
			name:        "Invalid JSON",
			respBody:    []byte(`{invalid json}`),
			target:      new(string),
			expectError: true,
			expected:    nil,
		},
		{
			name:        "Null data leaves target untouched",
			respBody:    []byte(`{"success": true, "data": null}`),
			target:      new(string),
			expectError: false,
			expected:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseJSONResponse(tt.respBody, tt.target)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.expected != nil {
				switch v := tt.target.(type) {
				case *string:
					assert.Equal(t, tt.expected, *v)
				case *map[string]interface{}:
					assert.Equal(t, tt.expected, *v)
				}
			}
		})
	}
}
