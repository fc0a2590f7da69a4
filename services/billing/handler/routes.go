package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lapakin/lapakin/internal/pkg/database"
	"github.com/lapakin/lapakin/internal/pkg/middleware"
)

// webhookRateLimit caps provider webhook deliveries per source IP per minute
const webhookRateLimit = 120

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *database.RedisClient) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey("core-service", "order-service", "portal-service"))

	billingGroup := internal.Group("/billing")
	billingGroup.POST("/subscriptions", h.billingHTTP.CreateSubscription)
	billingGroup.PUT("/organizations/:orgID/subscription", h.billingHTTP.ChangePlan)
	billingGroup.DELETE("/organizations/:orgID/subscription", h.billingHTTP.CancelSubscription)
	billingGroup.POST("/checkout", h.billingHTTP.CreateCheckout)
	billingGroup.POST("/portal", h.billingHTTP.CreateBillingPortal)
	billingGroup.POST("/organizations/:orgID/account", h.billingHTTP.CreateConnectedAccount)
	billingGroup.POST("/organizations/:orgID/account/onboarding", h.billingHTTP.CreateOnboardingLink)
	billingGroup.POST("/payouts", h.billingHTTP.CreatePayout)
	billingGroup.GET("/organizations/:orgID/payouts", h.billingHTTP.ListPayouts)

	// Public webhook endpoint, authenticated by signature, rate limited per IP
	e.POST("/webhooks/stripe", h.webhookHTTP.HandleStripeWebhook,
		middleware.IPRateLimiter(webhookRateLimit, time.Minute, redisClient.GetClient()))
}
