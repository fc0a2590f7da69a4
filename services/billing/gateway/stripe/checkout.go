package gateway_stripe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v83"
	checkoutsession "github.com/stripe/stripe-go/v83/checkout/session"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// CreateCheckoutSession opens a hosted checkout page for an order. The order
// ID rides in both the session and payment-intent metadata so webhook events
// can be tied back to the order no matter which object they carry.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSession, error) {
	defer startSegment(ctx, "Stripe/CreateCheckoutSession").End()

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Order %s", req.OrderID)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.cfg.Stripe.SuccessURL),
		CancelURL:  stripe.String(g.cfg.Stripe.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(g.cfg.Billing.Currency)),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"order_id": req.OrderID,
				"org_id":   req.OrgID,
			},
		},
	}
	params.AddMetadata("order_id", req.OrderID)
	params.AddMetadata("org_id", req.OrgID)

	if req.BuyerEmail != "" {
		params.CustomerEmail = stripe.String(req.BuyerEmail)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session for order %s: %w", req.OrderID, err)
	}

	logger.InfoCtx(ctx, "Created checkout session",
		logger.String("order_id", req.OrderID),
		logger.String("session_id", sess.ID),
		logger.Int64("amount", req.Amount))

	return &models.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: time.Unix(sess.ExpiresAt, 0),
	}, nil
}
