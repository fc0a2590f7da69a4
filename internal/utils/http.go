package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// errorWithFallback substitutes fallback when the caller did not provide a
// message.
func errorWithFallback(c echo.Context, statusCode int, errorMessage, fallback string) error {
	if errorMessage == "" {
		errorMessage = fallback
	}
	return ErrorResponseHandler(c, statusCode, errorMessage)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return errorWithFallback(c, http.StatusUnauthorized, errorMessage, "Unauthorized")
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return errorWithFallback(c, http.StatusForbidden, errorMessage, "Forbidden")
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return errorWithFallback(c, http.StatusNotFound, errorMessage, "Resource not found")
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	return errorWithFallback(c, http.StatusConflict, errorMessage, "Conflict")
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return errorWithFallback(c, http.StatusInternalServerError, errorMessage, "Internal server error")
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	return errorWithFallback(c, http.StatusServiceUnavailable, errorMessage, "Service unavailable")
}

// ParseJSONResponse decodes a Response envelope and unmarshals its data field
// into target. Returns the envelope's error when success is false.
func ParseJSONResponse(body []byte, target interface{}) error {
	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if !envelope.Success {
		if envelope.Error != "" {
			return fmt.Errorf("request failed: %s", envelope.Error)
		}
		return fmt.Errorf("request failed")
	}

	if target != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, target); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}
