package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v83/webhook"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	"github.com/lapakin/lapakin/internal/utils"
	"github.com/lapakin/lapakin/services/billing"
)

// maxWebhookBodyBytes caps webhook payload reads, per provider guidance.
const maxWebhookBodyBytes = int64(65536)

// WebhookHandler receives payment provider webhook deliveries
type WebhookHandler struct {
	cfg       *models.Config
	billingUC billing.BillingUC
}

// NewWebhookHandler creates a new webhook HTTP handler
func NewWebhookHandler(cfg *models.Config, billingUC billing.BillingUC) *WebhookHandler {
	return &WebhookHandler{
		cfg:       cfg,
		billingUC: billingUC,
	}
}

// HandleStripeWebhook verifies the delivery signature and hands the event to
// the usecase. A non-2xx response makes the provider retry the delivery.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.StripeWebhook")

	payload, err := io.ReadAll(http.MaxBytesReader(c.Response().Writer, c.Request().Body, maxWebhookBodyBytes))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Unable to read request body")
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.Request().Header.Get("Stripe-Signature"),
		h.cfg.Stripe.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		logger.Warn("Rejected webhook delivery with invalid signature",
			logger.String("client_ip", c.RealIP()),
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid webhook signature")
	}

	if err := h.billingUC.ProcessWebhookEvent(c.Request().Context(), &event); err != nil {
		logger.Error("Failed to process webhook event",
			logger.String("event_id", event.ID),
			logger.String("event_type", string(event.Type)),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to process event")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event processed", nil)
}
