package gateway

import (
	"context"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

// EnsureCustomer forwards to the Stripe gateway implementation
func (g *BillingGW) EnsureCustomer(ctx context.Context, org *models.Organization) (string, error) {
	return g.stripeGateway.EnsureCustomer(ctx, org)
}

// EnsurePrice forwards to the Stripe gateway implementation
func (g *BillingGW) EnsurePrice(ctx context.Context, plan models.PlanSpec) (string, error) {
	return g.stripeGateway.EnsurePrice(ctx, plan)
}

// CreateSubscription forwards to the Stripe gateway implementation
func (g *BillingGW) CreateSubscription(ctx context.Context, customerID, priceID, orgID, plan string) (*models.SubscriptionResult, error) {
	return g.stripeGateway.CreateSubscription(ctx, customerID, priceID, orgID, plan)
}

// ChangeSubscriptionPlan forwards to the Stripe gateway implementation
func (g *BillingGW) ChangeSubscriptionPlan(ctx context.Context, subscriptionID, priceID string) (*models.SubscriptionResult, error) {
	return g.stripeGateway.ChangeSubscriptionPlan(ctx, subscriptionID, priceID)
}

// CancelSubscription forwards to the Stripe gateway implementation
func (g *BillingGW) CancelSubscription(ctx context.Context, subscriptionID string, immediate bool) (*models.SubscriptionResult, error) {
	return g.stripeGateway.CancelSubscription(ctx, subscriptionID, immediate)
}

// GetSubscriptionID forwards to the Stripe gateway implementation
func (g *BillingGW) GetSubscriptionID(ctx context.Context, customerID string) (string, error) {
	return g.stripeGateway.GetSubscriptionID(ctx, customerID)
}

// CreateCheckoutSession forwards to the Stripe gateway implementation
func (g *BillingGW) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSession, error) {
	return g.stripeGateway.CreateCheckoutSession(ctx, req)
}

// CreatePortalSession forwards to the Stripe gateway implementation
func (g *BillingGW) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*models.PortalSession, error) {
	return g.stripeGateway.CreatePortalSession(ctx, customerID, returnURL)
}

// CreateConnectedAccount forwards to the Stripe gateway implementation
func (g *BillingGW) CreateConnectedAccount(ctx context.Context, org *models.Organization) (string, error) {
	return g.stripeGateway.CreateConnectedAccount(ctx, org)
}

// CreateOnboardingLink forwards to the Stripe gateway implementation
func (g *BillingGW) CreateOnboardingLink(ctx context.Context, accountID string) (string, error) {
	return g.stripeGateway.CreateOnboardingLink(ctx, accountID)
}

// GetAccountStatus forwards to the Stripe gateway implementation
func (g *BillingGW) GetAccountStatus(ctx context.Context, accountID string) (*models.AccountStatusUpdate, error) {
	return g.stripeGateway.GetAccountStatus(ctx, accountID)
}

// CreateTransfer forwards to the Stripe gateway implementation
func (g *BillingGW) CreateTransfer(ctx context.Context, accountID string, payout *models.Payout) (string, error) {
	return g.stripeGateway.CreateTransfer(ctx, accountID, payout)
}

// GetOrganization forwards to the core service client
func (g *BillingGW) GetOrganization(ctx context.Context, orgID string) (*models.Organization, error) {
	return g.coreClient.GetOrganization(ctx, orgID)
}

// UpsertOrgSubscription forwards to the core service client
func (g *BillingGW) UpsertOrgSubscription(ctx context.Context, sub *models.OrgSubscription) error {
	return g.coreClient.UpsertOrgSubscription(ctx, sub)
}

// UpdateAccountStatus forwards to the core service client
func (g *BillingGW) UpdateAccountStatus(ctx context.Context, update *models.AccountStatusUpdate) error {
	return g.coreClient.UpdateAccountStatus(ctx, update)
}

// UpdatePaymentIDs forwards to the core service client
func (g *BillingGW) UpdatePaymentIDs(ctx context.Context, ids *models.OrgPaymentIDs) error {
	return g.coreClient.UpdatePaymentIDs(ctx, ids)
}

// PublishBillingEvent forwards to the NATS gateway implementation
func (g *BillingGW) PublishBillingEvent(ctx context.Context, event *models.BillingEvent) error {
	return g.natsGateway.PublishBillingEvent(ctx, event)
}

// PublishOrderStatus forwards to the NSQ gateway implementation
func (g *BillingGW) PublishOrderStatus(ctx context.Context, msg *models.OrderStatusMessage) error {
	return g.nsqGateway.PublishOrderStatus(ctx, msg)
}
