package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	"github.com/lapakin/lapakin/internal/utils"
	"github.com/lapakin/lapakin/services/billing"
)

// BillingHandler handles HTTP requests for billing operations
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing HTTP handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
	}
}

// respondError maps usecase errors onto HTTP statuses. Anything that is not a
// known domain error is reported as an internal error.
func respondError(c echo.Context, txn *newrelic.Transaction, err error, fallback string) error {
	switch {
	case errors.Is(err, billing.ErrOrganizationNotFound):
		return utils.NotFoundResponse(c, "Organization not found")
	case errors.Is(err, billing.ErrUnknownPlan):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, billing.ErrNoSubscription):
		return utils.NotFoundResponse(c, "Organization has no subscription")
	case errors.Is(err, billing.ErrNoConnectedAccount):
		return utils.NotFoundResponse(c, "Organization has no connected account")
	case errors.Is(err, billing.ErrPayoutsDisabled):
		return utils.ConflictResponse(c, "Connected account cannot receive payouts yet")
	default:
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, fallback+": "+err.Error())
	}
}

// CreateSubscription handles the subscription signup request
func (h *BillingHandler) CreateSubscription(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.CreateSubscription")

	var req models.SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OrgID == "" || req.Plan == "" {
		return utils.BadRequestResponse(c, "Organization ID and plan are required")
	}

	result, err := h.billingUC.CreateSubscription(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create subscription",
			logger.String("org_id", req.OrgID),
			logger.String("plan", req.Plan),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to create subscription")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Subscription created successfully", result)
}

// ChangePlan handles the plan change request for an organization
func (h *BillingHandler) ChangePlan(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.ChangePlan")

	orgID := c.Param("orgID")
	if orgID == "" {
		return utils.BadRequestResponse(c, "Organization ID is required")
	}

	var req models.PlanChangeRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Plan == "" {
		return utils.BadRequestResponse(c, "Plan is required")
	}

	result, err := h.billingUC.ChangePlan(c.Request().Context(), orgID, &req)
	if err != nil {
		logger.Error("Failed to change plan",
			logger.String("org_id", orgID),
			logger.String("plan", req.Plan),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to change plan")
	}

	message := "Plan updated successfully"
	if result.PortalURL != "" {
		message = "Plan change must be completed in the billing portal"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// CancelSubscription handles the subscription cancellation request
func (h *BillingHandler) CancelSubscription(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.CancelSubscription")

	orgID := c.Param("orgID")
	if orgID == "" {
		return utils.BadRequestResponse(c, "Organization ID is required")
	}
	immediate := c.QueryParam("immediate") == "true"

	result, err := h.billingUC.CancelSubscription(c.Request().Context(), orgID, immediate)
	if err != nil {
		logger.Error("Failed to cancel subscription",
			logger.String("org_id", orgID),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to cancel subscription")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription canceled successfully", result)
}

// CreateCheckout handles the hosted checkout request for an order
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.CreateCheckout")

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OrderID == "" || req.OrgID == "" {
		return utils.BadRequestResponse(c, "Order ID and organization ID are required")
	}
	if req.Amount <= 0 {
		return utils.BadRequestResponse(c, "Amount must be positive")
	}
	if req.BuyerEmail != "" && !utils.IsValidEmail(req.BuyerEmail) {
		return utils.BadRequestResponse(c, "Buyer email is not a valid address")
	}

	session, err := h.billingUC.CreateCheckout(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create checkout session",
			logger.String("order_id", req.OrderID),
			logger.String("org_id", req.OrgID),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to create checkout session")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Checkout session created successfully", session)
}

// CreateBillingPortal handles the billing portal URL request
func (h *BillingHandler) CreateBillingPortal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.CreateBillingPortal")

	var req models.PortalRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OrgID == "" {
		return utils.BadRequestResponse(c, "Organization ID is required")
	}

	session, err := h.billingUC.CreateBillingPortal(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create billing portal session",
			logger.String("org_id", req.OrgID),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to create billing portal session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Billing portal session created successfully", session)
}

// CreateConnectedAccount handles the seller account setup request
func (h *BillingHandler) CreateConnectedAccount(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.CreateConnectedAccount")

	orgID := c.Param("orgID")
	if orgID == "" {
		return utils.BadRequestResponse(c, "Organization ID is required")
	}

	account, err := h.billingUC.CreateConnectedAccount(c.Request().Context(), orgID)
	if err != nil {
		logger.Error("Failed to create connected account",
			logger.String("org_id", orgID),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to create connected account")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Connected account ready", account)
}

// CreateOnboardingLink handles the onboarding link renewal request
func (h *BillingHandler) CreateOnboardingLink(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.CreateOnboardingLink")

	orgID := c.Param("orgID")
	if orgID == "" {
		return utils.BadRequestResponse(c, "Organization ID is required")
	}

	account, err := h.billingUC.CreateOnboardingLink(c.Request().Context(), orgID)
	if err != nil {
		logger.Error("Failed to create onboarding link",
			logger.String("org_id", orgID),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to create onboarding link")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Onboarding link created successfully", account)
}

// CreatePayout handles the payout request for an organization
func (h *BillingHandler) CreatePayout(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.CreatePayout")

	var req models.PayoutRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OrgID == "" {
		return utils.BadRequestResponse(c, "Organization ID is required")
	}
	if req.Amount <= 0 {
		return utils.BadRequestResponse(c, "Amount must be positive")
	}

	payout, err := h.billingUC.CreatePayout(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create payout",
			logger.String("org_id", req.OrgID),
			logger.Int64("amount", req.Amount),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to create payout")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payout settled successfully", payout)
}

// ListPayouts handles the payout history request for an organization
func (h *BillingHandler) ListPayouts(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.ListPayouts")

	orgID := c.Param("orgID")
	if orgID == "" {
		return utils.BadRequestResponse(c, "Organization ID is required")
	}

	payouts, err := h.billingUC.ListPayouts(c.Request().Context(), orgID)
	if err != nil {
		logger.Error("Failed to list payouts",
			logger.String("org_id", orgID),
			logger.Err(err))
		return respondError(c, txn, err, "Failed to list payouts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payouts retrieved successfully", payouts)
}
