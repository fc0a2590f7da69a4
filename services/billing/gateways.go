package billing

import (
	"context"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lapakin/lapakin/services/billing BillingGW

// BillingGW defines the billing gateways interface
type BillingGW interface {
	// Stripe gateway
	EnsureCustomer(ctx context.Context, org *models.Organization) (string, error)
	EnsurePrice(ctx context.Context, plan models.PlanSpec) (string, error)
	CreateSubscription(ctx context.Context, customerID, priceID, orgID, plan string) (*models.SubscriptionResult, error)
	ChangeSubscriptionPlan(ctx context.Context, subscriptionID, priceID string) (*models.SubscriptionResult, error)
	CancelSubscription(ctx context.Context, subscriptionID string, immediate bool) (*models.SubscriptionResult, error)
	GetSubscriptionID(ctx context.Context, customerID string) (string, error)
	CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*models.PortalSession, error)
	CreateConnectedAccount(ctx context.Context, org *models.Organization) (string, error)
	CreateOnboardingLink(ctx context.Context, accountID string) (string, error)
	GetAccountStatus(ctx context.Context, accountID string) (*models.AccountStatusUpdate, error)
	CreateTransfer(ctx context.Context, accountID string, payout *models.Payout) (string, error)

	// Core service gateway (HTTP)
	GetOrganization(ctx context.Context, orgID string) (*models.Organization, error)
	UpsertOrgSubscription(ctx context.Context, sub *models.OrgSubscription) error
	UpdateAccountStatus(ctx context.Context, update *models.AccountStatusUpdate) error
	UpdatePaymentIDs(ctx context.Context, ids *models.OrgPaymentIDs) error

	// Messaging gateways (NATS JetStream, NSQ)
	PublishBillingEvent(ctx context.Context, event *models.BillingEvent) error
	PublishOrderStatus(ctx context.Context, msg *models.OrderStatusMessage) error
}
