package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v83"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/internal/utils"
)

// maxEventSummaryLen caps the audit row summary column
const maxEventSummaryLen = 255

// ProcessWebhookEvent applies a verified provider event to platform state.
// Events are deduplicated by provider event ID; returning an error makes the
// handler respond non-2xx so the provider redelivers.
func (u *BillingUC) ProcessWebhookEvent(ctx context.Context, event *stripe.Event) error {
	processed, err := u.billingRepo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Event dedup lookup failed, processing anyway",
			logger.String("event_id", event.ID),
			logger.Err(err))
	}
	if processed {
		logger.InfoCtx(ctx, "Skipping already processed webhook event",
			logger.String("event_id", event.ID),
			logger.String("event_type", string(event.Type)))
		return nil
	}

	var (
		orgID   string
		summary string
	)
	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		orgID, summary, err = u.handleSubscriptionEvent(ctx, event, false)
	case "customer.subscription.deleted":
		orgID, summary, err = u.handleSubscriptionEvent(ctx, event, true)
	case "invoice.payment_failed":
		orgID, summary, err = u.handleInvoicePaymentFailed(ctx, event)
	case "checkout.session.completed":
		orgID, summary, err = u.handleCheckoutSessionEvent(ctx, event, models.OrderStatusPaid)
	case "checkout.session.async_payment_failed":
		orgID, summary, err = u.handleCheckoutSessionEvent(ctx, event, models.OrderStatusPaymentFailed)
	case "checkout.session.expired":
		orgID, summary, err = u.handleCheckoutSessionEvent(ctx, event, models.OrderStatusExpired)
	case "account.updated":
		orgID, summary, err = u.handleAccountUpdated(ctx, event)
	default:
		logger.DebugCtx(ctx, "Ignoring unhandled webhook event",
			logger.String("event_id", event.ID),
			logger.String("event_type", string(event.Type)))
		return nil
	}
	if err != nil {
		return err
	}

	if err := u.billingRepo.MarkEventProcessed(ctx, event.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to mark event as processed",
			logger.String("event_id", event.ID),
			logger.Err(err))
	}
	if err := u.billingRepo.RecordBillingEvent(ctx, &models.BillingEventRecord{
		EventID:   event.ID,
		EventType: string(event.Type),
		OrgID:     orgID,
		Summary:   utils.Truncate(summary, maxEventSummaryLen),
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to record billing event",
			logger.String("event_id", event.ID),
			logger.Err(err))
	}

	return nil
}

// handleSubscriptionEvent syncs subscription lifecycle events to the core
// service and fans them out to portal clients.
func (u *BillingUC) handleSubscriptionEvent(ctx context.Context, event *stripe.Event, deleted bool) (string, string, error) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return "", "", fmt.Errorf("failed to parse subscription event %s: %w", event.ID, err)
	}

	orgID := sub.Metadata["org_id"]
	if orgID == "" {
		logger.WarnCtx(ctx, "Subscription event without org metadata, skipping",
			logger.String("event_id", event.ID),
			logger.String("subscription_id", sub.ID))
		return "", "", nil
	}

	orgSub := &models.OrgSubscription{
		OrgID:             orgID,
		SubscriptionID:    sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if deleted {
		orgSub.Status = models.SubscriptionStatusCanceled
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		orgSub.CurrentPeriodEnd = time.Unix(item.CurrentPeriodEnd, 0)
		if item.Price != nil {
			orgSub.Plan = models.PlanByLookupKey(item.Price.LookupKey)
		}
	}

	if err := u.billingGW.UpsertOrgSubscription(ctx, orgSub); err != nil {
		return orgID, "", err
	}

	eventType := constants.EventSubscriptionUpdated
	if deleted || orgSub.Status == models.SubscriptionStatusCanceled {
		eventType = constants.EventSubscriptionCanceled
	}
	u.publishBillingEvent(ctx, &models.BillingEvent{
		ID:           event.ID,
		Type:         eventType,
		OrgID:        orgID,
		OccurredAt:   time.Now(),
		Subscription: orgSub,
	})

	return orgID, fmt.Sprintf("subscription %s %s", sub.ID, orgSub.Status), nil
}

// handleInvoicePaymentFailed flags the organization's subscription as past due.
// The organization is resolved from the invoice's subscription metadata, with
// the customer reverse-lookup cache as fallback for invoices that predate it.
func (u *BillingUC) handleInvoicePaymentFailed(ctx context.Context, event *stripe.Event) (string, string, error) {
	var inv stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
		return "", "", fmt.Errorf("failed to parse invoice event %s: %w", event.ID, err)
	}

	var orgID, subscriptionID string
	if inv.Parent != nil && inv.Parent.SubscriptionDetails != nil {
		orgID = inv.Parent.SubscriptionDetails.Metadata["org_id"]
		if inv.Parent.SubscriptionDetails.Subscription != nil {
			subscriptionID = inv.Parent.SubscriptionDetails.Subscription.ID
		}
	}
	if orgID == "" && inv.Customer != nil {
		cachedOrg, err := u.billingRepo.GetOrgByCustomer(ctx, inv.Customer.ID)
		if err != nil {
			logger.WarnCtx(ctx, "Customer lookup failed while resolving invoice",
				logger.String("customer_id", inv.Customer.ID),
				logger.Err(err))
		}
		orgID = cachedOrg
	}
	if orgID == "" {
		logger.WarnCtx(ctx, "Could not resolve organization for failed invoice, skipping",
			logger.String("event_id", event.ID),
			logger.String("invoice_id", inv.ID))
		return "", "", nil
	}

	orgSub := &models.OrgSubscription{
		OrgID:          orgID,
		SubscriptionID: subscriptionID,
		Status:         models.SubscriptionStatusPastDue,
	}
	if err := u.billingGW.UpsertOrgSubscription(ctx, orgSub); err != nil {
		return orgID, "", err
	}

	u.publishBillingEvent(ctx, &models.BillingEvent{
		ID:           event.ID,
		Type:         constants.EventSubscriptionUpdated,
		OrgID:        orgID,
		OccurredAt:   time.Now(),
		Subscription: orgSub,
	})

	return orgID, fmt.Sprintf("invoice %s payment failed", inv.ID), nil
}

// handleCheckoutSessionEvent tells the order service the outcome of a hosted
// checkout. A session without an order reference is acknowledged and skipped.
func (u *BillingUC) handleCheckoutSessionEvent(ctx context.Context, event *stripe.Event, orderStatus string) (string, string, error) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return "", "", fmt.Errorf("failed to parse checkout session event %s: %w", event.ID, err)
	}

	orderID := sess.Metadata["order_id"]
	if orderID == "" {
		logger.WarnCtx(ctx, "Checkout session without order metadata, skipping",
			logger.String("event_id", event.ID),
			logger.String("session_id", sess.ID))
		return "", "", nil
	}
	orgID := sess.Metadata["org_id"]

	paymentRef := sess.ID
	if sess.PaymentIntent != nil {
		paymentRef = sess.PaymentIntent.ID
	}

	if err := u.billingGW.PublishOrderStatus(ctx, &models.OrderStatusMessage{
		OrderID:    orderID,
		OrgID:      orgID,
		Status:     orderStatus,
		PaymentRef: paymentRef,
		Amount:     sess.AmountTotal,
		UpdatedAt:  time.Now(),
	}); err != nil {
		return orgID, "", err
	}

	return orgID, fmt.Sprintf("order %s %s", orderID, orderStatus), nil
}

// handleAccountUpdated syncs connected-account capability changes to the core
// service so payout eligibility stays current.
func (u *BillingUC) handleAccountUpdated(ctx context.Context, event *stripe.Event) (string, string, error) {
	var acct stripe.Account
	if err := json.Unmarshal(event.Data.Raw, &acct); err != nil {
		return "", "", fmt.Errorf("failed to parse account event %s: %w", event.ID, err)
	}

	orgID := acct.Metadata["org_id"]
	if orgID == "" {
		logger.WarnCtx(ctx, "Account event without org metadata, skipping",
			logger.String("event_id", event.ID),
			logger.String("account_id", acct.ID))
		return "", "", nil
	}

	update := &models.AccountStatusUpdate{
		OrgID:            orgID,
		AccountID:        acct.ID,
		Status:           models.ConnectedAccountStatus(acct.ChargesEnabled, acct.PayoutsEnabled, acct.DetailsSubmitted),
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}
	if err := u.billingGW.UpdateAccountStatus(ctx, update); err != nil {
		return orgID, "", err
	}

	u.publishBillingEvent(ctx, &models.BillingEvent{
		ID:         event.ID,
		Type:       constants.EventAccountUpdated,
		OrgID:      orgID,
		OccurredAt: time.Now(),
		Account:    update,
	})

	return orgID, fmt.Sprintf("account %s %s", acct.ID, update.Status), nil
}
