package gateway_stripe

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/stripe/stripe-go/v83"

	"github.com/lapakin/lapakin/internal/pkg/models"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
)

// StripeGateway wraps the provider SDK for the billing service. The SDK key
// is process-global, so one gateway instance serves the whole service.
type StripeGateway struct {
	cfg *models.Config
}

// NewStripeGateway sets the provider API key and returns the gateway
func NewStripeGateway(cfg *models.Config) *StripeGateway {
	stripe.Key = cfg.Stripe.SecretKey
	return &StripeGateway{cfg: cfg}
}

// isResourceMissing reports whether err is the provider's "no such object" error
func isResourceMissing(err error) bool {
	stripeErr, ok := err.(*stripe.Error)
	return ok && stripeErr.Code == stripe.ErrorCodeResourceMissing
}

// startSegment opens a provider-call segment on the transaction carried by ctx.
// Segment methods are nil-safe, so callers can defer End unconditionally.
func startSegment(ctx context.Context, name string) *newrelic.Segment {
	return nrpkg.StartSegment(nrpkg.FromContext(ctx), name)
}
