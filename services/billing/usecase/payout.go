package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing"
)

// CreatePayout transfers an organization's earnings to its connected account,
// keeping the platform fee. The payout is recorded as pending before the
// transfer and settled or failed after, so the ledger never loses a transfer
// that reached the provider.
func (u *BillingUC) CreatePayout(ctx context.Context, req *models.PayoutRequest) (*models.Payout, error) {
	org, err := u.billingGW.GetOrganization(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}
	if org.StripeAccountID == "" {
		return nil, billing.ErrNoConnectedAccount
	}

	status, err := u.billingGW.GetAccountStatus(ctx, org.StripeAccountID)
	if err != nil {
		return nil, err
	}
	if !status.PayoutsEnabled {
		return nil, billing.ErrPayoutsDisabled
	}

	fee := platformFee(req.Amount, u.cfg.Billing.PlatformFeePercent)
	payout := &models.Payout{
		ID:          uuid.New(),
		OrgID:       org.ID,
		GrossAmount: req.Amount,
		FeeAmount:   fee,
		NetAmount:   req.Amount - fee,
		Currency:    u.cfg.Billing.Currency,
		Status:      models.PayoutStatusPending,
		Reference:   req.Reference,
		CreatedAt:   time.Now(),
	}

	if err := u.billingRepo.CreatePayout(ctx, payout); err != nil {
		return nil, err
	}

	transferID, err := u.billingGW.CreateTransfer(ctx, org.StripeAccountID, payout)
	if err != nil {
		if markErr := u.billingRepo.MarkPayoutFailed(ctx, payout.ID); markErr != nil {
			logger.ErrorCtx(ctx, "Failed to mark payout as failed",
				logger.String("payout_id", payout.ID.String()),
				logger.Err(markErr))
		}
		return nil, err
	}

	settledAt := time.Now()
	if err := u.billingRepo.MarkPayoutSettled(ctx, payout.ID, transferID, settledAt); err != nil {
		logger.ErrorCtx(ctx, "Transfer succeeded but payout row was not settled",
			logger.String("payout_id", payout.ID.String()),
			logger.String("transfer_id", transferID),
			logger.Err(err))
	}
	payout.TransferID = transferID
	payout.Status = models.PayoutStatusSettled
	payout.SettledAt = &settledAt

	u.publishBillingEvent(ctx, &models.BillingEvent{
		ID:         "payout-" + payout.ID.String(),
		Type:       constants.EventPayoutSettled,
		OrgID:      org.ID,
		OccurredAt: settledAt,
		Payout:     payout,
	})

	logger.InfoCtx(ctx, "Settled payout",
		logger.String("org_id", org.ID),
		logger.String("payout_id", payout.ID.String()),
		logger.Int64("gross_amount", payout.GrossAmount),
		logger.Int64("net_amount", payout.NetAmount))

	return payout, nil
}

// ListPayouts returns the payout ledger for an organization, newest first.
func (u *BillingUC) ListPayouts(ctx context.Context, orgID string) ([]models.Payout, error) {
	return u.billingRepo.ListPayoutsByOrg(ctx, orgID)
}

// platformFee rounds the percentage fee to the nearest minor currency unit and
// never exceeds the gross amount.
func platformFee(amount int64, percent float64) int64 {
	fee := int64(math.Round(float64(amount) * percent / 100))
	if fee > amount {
		return amount
	}
	return fee
}

// publishBillingEvent fans billing state changes out on the event bus. Publish
// failures are logged and swallowed: consumers reconcile from the core service
// on reconnect.
func (u *BillingUC) publishBillingEvent(ctx context.Context, event *models.BillingEvent) {
	if err := u.billingGW.PublishBillingEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish billing event",
			logger.String("event_type", event.Type),
			logger.String("org_id", event.OrgID),
			logger.Err(err))
	}
}
