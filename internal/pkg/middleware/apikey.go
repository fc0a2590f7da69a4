package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lapakin/lapakin/internal/pkg/config"
	"github.com/lapakin/lapakin/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys stores the mapping of service names to their API keys
var ServiceAPIKeys = map[string]string{
	"billing-service": config.GetEnv("BILLING_SERVICE_API_KEY", ""),
	"core-service":    config.GetEnv("CORE_SERVICE_API_KEY", ""),
	"order-service":   config.GetEnv("ORDER_SERVICE_API_KEY", ""),
	"portal-service":  config.GetEnv("PORTAL_SERVICE_API_KEY", ""),
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				if ServiceAPIKeys[service] != "" && strings.EqualFold(apiKey, ServiceAPIKeys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
