package handler

import (
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing"
	httpHandler "github.com/lapakin/lapakin/services/billing/handler/http"
)

// Handler combines all handlers for the billing service
type Handler struct {
	billingHTTP *httpHandler.BillingHandler
	webhookHTTP *httpHandler.WebhookHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(cfg *models.Config, billingUC billing.BillingUC) *Handler {
	return &Handler{
		billingHTTP: httpHandler.NewBillingHandler(billingUC),
		webhookHTTP: httpHandler.NewWebhookHandler(cfg, billingUC),
		cfg:         cfg,
	}
}
