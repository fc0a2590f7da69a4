package billing

import (
	"context"

	"github.com/stripe/stripe-go/v83"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/lapakin/lapakin/services/billing BillingUC

// BillingUC represents the billing usecase interface
type BillingUC interface {
	// subscription lifecycle
	CreateSubscription(ctx context.Context, req *models.SubscriptionRequest) (*models.SubscriptionResult, error)
	ChangePlan(ctx context.Context, orgID string, req *models.PlanChangeRequest) (*models.SubscriptionResult, error)
	CancelSubscription(ctx context.Context, orgID string, immediate bool) (*models.SubscriptionResult, error)

	// buyer checkout and merchant billing portal
	CreateCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSession, error)
	CreateBillingPortal(ctx context.Context, req *models.PortalRequest) (*models.PortalSession, error)

	// seller onboarding
	CreateConnectedAccount(ctx context.Context, orgID string) (*models.ConnectedAccount, error)
	CreateOnboardingLink(ctx context.Context, orgID string) (*models.ConnectedAccount, error)

	// payouts
	CreatePayout(ctx context.Context, req *models.PayoutRequest) (*models.Payout, error)
	ListPayouts(ctx context.Context, orgID string) ([]models.Payout, error)

	// provider webhook events (already signature-verified by the handler)
	ProcessWebhookEvent(ctx context.Context, event *stripe.Event) error
}
