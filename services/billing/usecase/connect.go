package usecase

import (
	"context"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing"
)

// CreateConnectedAccount sets up the provider account an organization receives
// payouts on and returns a fresh onboarding URL. Calling it again for an
// organization that already has an account just re-issues the onboarding link.
func (u *BillingUC) CreateConnectedAccount(ctx context.Context, orgID string) (*models.ConnectedAccount, error) {
	org, err := u.billingGW.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	accountID := org.StripeAccountID
	status := models.AccountStatusPending

	if accountID == "" {
		accountID, err = u.billingGW.CreateConnectedAccount(ctx, org)
		if err != nil {
			return nil, err
		}
		if err := u.billingGW.UpdatePaymentIDs(ctx, &models.OrgPaymentIDs{
			OrgID:     org.ID,
			AccountID: accountID,
		}); err != nil {
			logger.WarnCtx(ctx, "Failed to store account ID on organization",
				logger.String("org_id", org.ID),
				logger.Err(err))
		}
	} else {
		current, err := u.billingGW.GetAccountStatus(ctx, accountID)
		if err != nil {
			return nil, err
		}
		status = current.Status
	}

	onboardingURL, err := u.billingGW.CreateOnboardingLink(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &models.ConnectedAccount{
		OrgID:         org.ID,
		AccountID:     accountID,
		Status:        status,
		OnboardingURL: onboardingURL,
	}, nil
}

// CreateOnboardingLink re-issues an onboarding URL for an existing connected
// account, used when the previous single-use link expired before the merchant
// finished.
func (u *BillingUC) CreateOnboardingLink(ctx context.Context, orgID string) (*models.ConnectedAccount, error) {
	org, err := u.billingGW.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.StripeAccountID == "" {
		return nil, billing.ErrNoConnectedAccount
	}

	current, err := u.billingGW.GetAccountStatus(ctx, org.StripeAccountID)
	if err != nil {
		return nil, err
	}

	onboardingURL, err := u.billingGW.CreateOnboardingLink(ctx, org.StripeAccountID)
	if err != nil {
		return nil, err
	}

	return &models.ConnectedAccount{
		OrgID:         org.ID,
		AccountID:     org.StripeAccountID,
		Status:        current.Status,
		OnboardingURL: onboardingURL,
	}, nil
}
