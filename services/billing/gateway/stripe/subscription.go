package gateway_stripe

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/subscription"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// CreateSubscription creates an incomplete subscription so the frontend can
// collect the first payment with the returned client secret.
func (g *StripeGateway) CreateSubscription(ctx context.Context, customerID, priceID, orgID, plan string) (*models.SubscriptionResult, error) {
	defer startSegment(ctx, "Stripe/CreateSubscription").End()

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.AddMetadata("org_id", orgID)
	params.AddMetadata("plan", plan)
	params.AddExpand("latest_invoice.confirmation_secret")

	sub, err := subscription.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription for org %s: %w", orgID, err)
	}

	logger.InfoCtx(ctx, "Created subscription",
		logger.String("org_id", orgID),
		logger.String("subscription_id", sub.ID),
		logger.String("plan", plan))

	return subscriptionResult(sub), nil
}

// ChangeSubscriptionPlan swaps the subscription's single item to a new price
// with prorations, so the merchant is charged or credited the difference.
func (g *StripeGateway) ChangeSubscriptionPlan(ctx context.Context, subscriptionID, priceID string) (*models.SubscriptionResult, error) {
	defer startSegment(ctx, "Stripe/ChangeSubscriptionPlan").End()

	current, err := subscription.Get(subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription %s: %w", subscriptionID, err)
	}
	if current.Items == nil || len(current.Items.Data) == 0 {
		return nil, fmt.Errorf("subscription %s has no items", subscriptionID)
	}

	params := &stripe.SubscriptionParams{
		Items: []*stripe.SubscriptionItemsParams{
			{
				ID:    stripe.String(current.Items.Data[0].ID),
				Price: stripe.String(priceID),
			},
		},
		ProrationBehavior: stripe.String("create_prorations"),
	}

	updated, err := subscription.Update(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription %s: %w", subscriptionID, err)
	}

	logger.InfoCtx(ctx, "Changed subscription plan",
		logger.String("subscription_id", subscriptionID),
		logger.String("price_id", priceID))

	return subscriptionResult(updated), nil
}

// CancelSubscription cancels at period end by default; immediate cancelation
// ends the subscription right away.
func (g *StripeGateway) CancelSubscription(ctx context.Context, subscriptionID string, immediate bool) (*models.SubscriptionResult, error) {
	defer startSegment(ctx, "Stripe/CancelSubscription").End()

	var (
		sub *stripe.Subscription
		err error
	)
	if immediate {
		sub, err = subscription.Cancel(subscriptionID, nil)
	} else {
		sub, err = subscription.Update(subscriptionID, &stripe.SubscriptionParams{
			CancelAtPeriodEnd: stripe.Bool(true),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel subscription %s: %w", subscriptionID, err)
	}

	logger.InfoCtx(ctx, "Canceled subscription",
		logger.String("subscription_id", subscriptionID),
		logger.Bool("immediate", immediate))

	return subscriptionResult(sub), nil
}

// GetSubscriptionID returns the customer's current subscription ID, or empty
// when the customer has none. Used when the stored subscription ID is missing.
func (g *StripeGateway) GetSubscriptionID(ctx context.Context, customerID string) (string, error) {
	defer startSegment(ctx, "Stripe/GetSubscriptionID").End()

	listParams := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
	}
	listParams.Limit = stripe.Int64(1)

	iter := subscription.List(listParams)
	if iter.Next() {
		return iter.Subscription().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to list subscriptions for customer %s: %w", customerID, err)
	}
	return "", nil
}

// subscriptionResult maps a provider subscription onto the service result.
// The current period end lives on the subscription item; the client secret on
// the latest invoice's confirmation secret when it was expanded.
func subscriptionResult(sub *stripe.Subscription) *models.SubscriptionResult {
	result := &models.SubscriptionResult{
		SubscriptionID:    sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}

	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		result.CurrentPeriodEnd = time.Unix(item.CurrentPeriodEnd, 0)
		if item.Price != nil {
			result.Plan = models.PlanByLookupKey(item.Price.LookupKey)
		}
	}

	if sub.LatestInvoice != nil && sub.LatestInvoice.ConfirmationSecret != nil {
		result.ClientSecret = sub.LatestInvoice.ConfirmationSecret.ClientSecret
	}

	return result
}
