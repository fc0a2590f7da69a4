package gateway_stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/customer"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// EnsureCustomer resolves the provider customer for an organization. The
// stored customer ID wins when it still resolves; otherwise the billing email
// is searched before a new customer is created with org_id metadata.
func (g *StripeGateway) EnsureCustomer(ctx context.Context, org *models.Organization) (string, error) {
	defer startSegment(ctx, "Stripe/EnsureCustomer").End()

	if org.StripeCustomerID != "" {
		cus, err := customer.Get(org.StripeCustomerID, nil)
		if err == nil && !cus.Deleted {
			return cus.ID, nil
		}
		if err != nil && !isResourceMissing(err) {
			return "", fmt.Errorf("failed to look up customer %s: %w", org.StripeCustomerID, err)
		}
		logger.WarnCtx(ctx, "Stored customer ID no longer resolves, re-linking",
			logger.String("org_id", org.ID),
			logger.String("customer_id", org.StripeCustomerID))
	}

	listParams := &stripe.CustomerListParams{
		Email: stripe.String(org.Email),
	}
	listParams.Limit = stripe.Int64(1)
	iter := customer.List(listParams)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to search customer by email: %w", err)
	}

	createParams := &stripe.CustomerParams{
		Email: stripe.String(org.Email),
		Name:  stripe.String(org.Name),
	}
	createParams.AddMetadata("org_id", org.ID)

	cus, err := customer.New(createParams)
	if err != nil {
		return "", fmt.Errorf("failed to create customer for org %s: %w", org.ID, err)
	}

	logger.InfoCtx(ctx, "Created provider customer",
		logger.String("org_id", org.ID),
		logger.String("customer_id", cus.ID))

	return cus.ID, nil
}
