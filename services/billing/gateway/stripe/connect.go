package gateway_stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/account"
	"github.com/stripe/stripe-go/v83/accountlink"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// CreateConnectedAccount creates an Express account for an organization with
// the transfers capability requested, so payouts can reach it once onboarded.
func (g *StripeGateway) CreateConnectedAccount(ctx context.Context, org *models.Organization) (string, error) {
	defer startSegment(ctx, "Stripe/CreateConnectedAccount").End()

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(org.Email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
		BusinessProfile: &stripe.AccountBusinessProfileParams{
			Name: stripe.String(org.Name),
		},
	}
	params.AddMetadata("org_id", org.ID)

	acct, err := account.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create connected account for org %s: %w", org.ID, err)
	}

	logger.InfoCtx(ctx, "Created connected account",
		logger.String("org_id", org.ID),
		logger.String("account_id", acct.ID))

	return acct.ID, nil
}

// CreateOnboardingLink generates a single-use onboarding URL for an account
func (g *StripeGateway) CreateOnboardingLink(ctx context.Context, accountID string) (string, error) {
	defer startSegment(ctx, "Stripe/CreateOnboardingLink").End()

	link, err := accountlink.New(&stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(g.cfg.Stripe.OnboardRefreshURL),
		ReturnURL:  stripe.String(g.cfg.Stripe.OnboardReturnURL),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create onboarding link for account %s: %w", accountID, err)
	}

	return link.URL, nil
}

// GetAccountStatus reads the account's capability flags and maps them to the
// platform's connected-account status.
func (g *StripeGateway) GetAccountStatus(ctx context.Context, accountID string) (*models.AccountStatusUpdate, error) {
	defer startSegment(ctx, "Stripe/GetAccountStatus").End()

	acct, err := account.GetByID(accountID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}

	update := &models.AccountStatusUpdate{
		OrgID:            acct.Metadata["org_id"],
		AccountID:        acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}
	update.Status = models.ConnectedAccountStatus(acct.ChargesEnabled, acct.PayoutsEnabled, acct.DetailsSubmitted)

	return update, nil
}
