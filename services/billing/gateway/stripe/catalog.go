package gateway_stripe

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/price"
	"github.com/stripe/stripe-go/v83/product"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// EnsurePrice resolves the recurring price for a plan by its lookup key,
// creating the product and price on first use. Lookup keys are stable across
// environments, so the same plan catalog materializes in test and live mode.
func (g *StripeGateway) EnsurePrice(ctx context.Context, plan models.PlanSpec) (string, error) {
	defer startSegment(ctx, "Stripe/EnsurePrice").End()

	listParams := &stripe.PriceListParams{
		LookupKeys: stripe.StringSlice([]string{plan.LookupKey}),
	}
	listParams.Limit = stripe.Int64(1)
	iter := price.List(listParams)
	if iter.Next() {
		return iter.Price().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to list prices for lookup key %s: %w", plan.LookupKey, err)
	}

	productID, err := g.ensureProduct(ctx, plan)
	if err != nil {
		return "", err
	}

	priceParams := &stripe.PriceParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(plan.Amount),
		Currency:   stripe.String(strings.ToLower(g.cfg.Billing.Currency)),
		LookupKey:  stripe.String(plan.LookupKey),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(plan.Interval),
		},
	}
	priceParams.AddMetadata("plan", plan.Name)

	p, err := price.New(priceParams)
	if err != nil {
		return "", fmt.Errorf("failed to create price for plan %s: %w", plan.Name, err)
	}

	logger.InfoCtx(ctx, "Created plan price",
		logger.String("plan", plan.Name),
		logger.String("price_id", p.ID),
		logger.Int64("amount", plan.Amount))

	return p.ID, nil
}

// ensureProduct finds the plan's product by metadata or creates it
func (g *StripeGateway) ensureProduct(ctx context.Context, plan models.PlanSpec) (string, error) {
	searchParams := &stripe.ProductSearchParams{
		SearchParams: stripe.SearchParams{
			Query: fmt.Sprintf("active:'true' AND metadata['plan']:'%s'", plan.Name),
		},
	}
	iter := product.Search(searchParams)
	if iter.Next() {
		return iter.Product().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to search product for plan %s: %w", plan.Name, err)
	}

	productParams := &stripe.ProductParams{
		Name: stripe.String(plan.ProductName),
	}
	productParams.AddMetadata("plan", plan.Name)

	prod, err := product.New(productParams)
	if err != nil {
		return "", fmt.Errorf("failed to create product for plan %s: %w", plan.Name, err)
	}

	logger.InfoCtx(ctx, "Created plan product",
		logger.String("plan", plan.Name),
		logger.String("product_id", prod.ID))

	return prod.ID, nil
}
