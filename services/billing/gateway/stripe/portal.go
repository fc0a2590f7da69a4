package gateway_stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v83"
	portalsession "github.com/stripe/stripe-go/v83/billingportal/session"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

// CreatePortalSession generates a billing-portal URL where the merchant can
// manage payment methods, invoices and plan changes directly with the provider.
func (g *StripeGateway) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*models.PortalSession, error) {
	defer startSegment(ctx, "Stripe/CreatePortalSession").End()

	if returnURL == "" {
		returnURL = g.cfg.Stripe.PortalReturnURL
	}

	sess, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session for customer %s: %w", customerID, err)
	}

	return &models.PortalSession{URL: sess.URL}, nil
}
