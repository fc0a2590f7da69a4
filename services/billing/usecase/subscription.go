package usecase

import (
	"context"
	"fmt"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing"
)

// CreateSubscription subscribes an organization to a paid plan. The provider
// subscription starts incomplete and the returned client secret is used by the
// frontend to collect the first payment.
func (u *BillingUC) CreateSubscription(ctx context.Context, req *models.SubscriptionRequest) (*models.SubscriptionResult, error) {
	plan, ok := models.GetPlan(req.Plan)
	if !ok {
		return nil, fmt.Errorf("%w: %s", billing.ErrUnknownPlan, req.Plan)
	}

	org, err := u.billingGW.GetOrganization(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}

	customerID, err := u.ensureCustomer(ctx, org)
	if err != nil {
		return nil, err
	}

	priceID, err := u.billingGW.EnsurePrice(ctx, plan)
	if err != nil {
		return nil, err
	}

	result, err := u.billingGW.CreateSubscription(ctx, customerID, priceID, org.ID, plan.Name)
	if err != nil {
		return nil, err
	}
	result.OrgID = org.ID
	result.Plan = plan.Name

	u.reportSubscription(ctx, &models.OrgSubscription{
		OrgID:             org.ID,
		SubscriptionID:    result.SubscriptionID,
		Plan:              plan.Name,
		Status:            result.Status,
		CurrentPeriodEnd:  result.CurrentPeriodEnd,
		CancelAtPeriodEnd: result.CancelAtPeriodEnd,
	})

	logger.InfoCtx(ctx, "Created subscription",
		logger.String("org_id", org.ID),
		logger.String("plan", plan.Name),
		logger.String("subscription_id", result.SubscriptionID))

	return result, nil
}

// ChangePlan moves an organization's subscription to another plan with
// proration. When the provider rejects the update, the merchant gets a billing
// portal URL to finish the change there instead; any other failure surfaces to
// the caller unchanged.
func (u *BillingUC) ChangePlan(ctx context.Context, orgID string, req *models.PlanChangeRequest) (*models.SubscriptionResult, error) {
	plan, ok := models.GetPlan(req.Plan)
	if !ok {
		return nil, fmt.Errorf("%w: %s", billing.ErrUnknownPlan, req.Plan)
	}

	org, err := u.billingGW.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.StripeCustomerID == "" {
		return nil, billing.ErrNoSubscription
	}

	customerID, err := u.ensureCustomer(ctx, org)
	if err != nil {
		return nil, err
	}

	subscriptionID, err := u.resolveSubscriptionID(ctx, org, customerID)
	if err != nil {
		return nil, err
	}

	priceID, err := u.billingGW.EnsurePrice(ctx, plan)
	if err != nil {
		return nil, err
	}

	result, err := u.billingGW.ChangeSubscriptionPlan(ctx, subscriptionID, priceID)
	if err != nil {
		return u.planChangeFallback(ctx, org, customerID, plan.Name, err)
	}
	result.OrgID = org.ID
	result.Plan = plan.Name

	u.reportSubscription(ctx, &models.OrgSubscription{
		OrgID:             org.ID,
		SubscriptionID:    result.SubscriptionID,
		Plan:              plan.Name,
		Status:            result.Status,
		CurrentPeriodEnd:  result.CurrentPeriodEnd,
		CancelAtPeriodEnd: result.CancelAtPeriodEnd,
	})

	logger.InfoCtx(ctx, "Changed subscription plan",
		logger.String("org_id", org.ID),
		logger.String("plan", plan.Name),
		logger.String("subscription_id", result.SubscriptionID))

	return result, nil
}

// planChangeFallback hands the merchant over to the hosted billing portal when
// a direct plan change was rejected. If the portal session cannot be created
// either, the original update error is returned.
func (u *BillingUC) planChangeFallback(ctx context.Context, org *models.Organization, customerID, plan string, updateErr error) (*models.SubscriptionResult, error) {
	logger.WarnCtx(ctx, "Plan change rejected by provider, falling back to billing portal",
		logger.String("org_id", org.ID),
		logger.String("plan", plan),
		logger.Err(updateErr))

	portal, err := u.billingGW.CreatePortalSession(ctx, customerID, "")
	if err != nil {
		logger.ErrorCtx(ctx, "Billing portal fallback failed",
			logger.String("org_id", org.ID),
			logger.Err(err))
		return nil, updateErr
	}

	return &models.SubscriptionResult{
		OrgID:     org.ID,
		Plan:      plan,
		PortalURL: portal.URL,
	}, nil
}

// CancelSubscription cancels an organization's subscription, either at period
// end or immediately.
func (u *BillingUC) CancelSubscription(ctx context.Context, orgID string, immediate bool) (*models.SubscriptionResult, error) {
	org, err := u.billingGW.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.StripeCustomerID == "" {
		return nil, billing.ErrNoSubscription
	}

	subscriptionID, err := u.resolveSubscriptionID(ctx, org, org.StripeCustomerID)
	if err != nil {
		return nil, err
	}

	result, err := u.billingGW.CancelSubscription(ctx, subscriptionID, immediate)
	if err != nil {
		return nil, err
	}
	result.OrgID = org.ID

	u.reportSubscription(ctx, &models.OrgSubscription{
		OrgID:             org.ID,
		SubscriptionID:    result.SubscriptionID,
		Status:            result.Status,
		CancelAtPeriodEnd: result.CancelAtPeriodEnd,
	})

	logger.InfoCtx(ctx, "Canceled subscription",
		logger.String("org_id", org.ID),
		logger.String("subscription_id", subscriptionID),
		logger.Bool("immediate", immediate))

	return result, nil
}

// CreateBillingPortal generates a billing-portal URL where the merchant can
// manage payment methods and invoices.
func (u *BillingUC) CreateBillingPortal(ctx context.Context, req *models.PortalRequest) (*models.PortalSession, error) {
	org, err := u.billingGW.GetOrganization(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}

	customerID, err := u.ensureCustomer(ctx, org)
	if err != nil {
		return nil, err
	}

	return u.billingGW.CreatePortalSession(ctx, customerID, req.ReturnURL)
}

// ensureCustomer resolves the provider customer for an organization. When the
// gateway had to create or re-link the customer, the new ID is pushed to the
// core service and the reverse lookup cache.
func (u *BillingUC) ensureCustomer(ctx context.Context, org *models.Organization) (string, error) {
	customerID, err := u.billingGW.EnsureCustomer(ctx, org)
	if err != nil {
		return "", err
	}

	if customerID != org.StripeCustomerID {
		if err := u.billingGW.UpdatePaymentIDs(ctx, &models.OrgPaymentIDs{
			OrgID:      org.ID,
			CustomerID: customerID,
		}); err != nil {
			logger.WarnCtx(ctx, "Failed to store customer ID on organization",
				logger.String("org_id", org.ID),
				logger.Err(err))
		}
	}
	if err := u.billingRepo.CacheCustomerOrg(ctx, customerID, org.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to cache customer lookup",
			logger.String("customer_id", customerID),
			logger.Err(err))
	}

	return customerID, nil
}

// resolveSubscriptionID prefers the subscription ID stored on the organization
// and falls back to listing the customer's subscriptions at the provider.
func (u *BillingUC) resolveSubscriptionID(ctx context.Context, org *models.Organization, customerID string) (string, error) {
	if org.StripeSubscriptionID != "" {
		return org.StripeSubscriptionID, nil
	}

	subscriptionID, err := u.billingGW.GetSubscriptionID(ctx, customerID)
	if err != nil {
		return "", err
	}
	if subscriptionID == "" {
		return "", billing.ErrNoSubscription
	}
	return subscriptionID, nil
}

// reportSubscription pushes subscription state to the core service. Failures
// are logged, not surfaced: the provider change already happened and webhook
// delivery converges the stored state.
func (u *BillingUC) reportSubscription(ctx context.Context, sub *models.OrgSubscription) {
	if err := u.billingGW.UpsertOrgSubscription(ctx, sub); err != nil {
		logger.ErrorCtx(ctx, "Failed to report subscription to core service",
			logger.String("org_id", sub.OrgID),
			logger.String("subscription_id", sub.SubscriptionID),
			logger.Err(err))
	}
}
