package gateway_stripe

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/transfer"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// CreateTransfer moves the payout's net amount to the organization's connected
// account. The idempotency key is derived from the payout record, so a retried
// call cannot double-pay.
func (g *StripeGateway) CreateTransfer(ctx context.Context, accountID string, payout *models.Payout) (string, error) {
	defer startSegment(ctx, "Stripe/CreateTransfer").End()

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(payout.NetAmount),
		Currency:    stripe.String(strings.ToLower(payout.Currency)),
		Destination: stripe.String(accountID),
	}
	if payout.Reference != "" {
		params.TransferGroup = stripe.String(payout.Reference)
	}
	params.AddMetadata("org_id", payout.OrgID)
	params.AddMetadata("payout_id", payout.ID.String())
	params.IdempotencyKey = stripe.String("payout-" + payout.ID.String())

	tr, err := transfer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create transfer for payout %s: %w", payout.ID, err)
	}

	logger.InfoCtx(ctx, "Created transfer",
		logger.String("org_id", payout.OrgID),
		logger.String("payout_id", payout.ID.String()),
		logger.String("transfer_id", tr.ID),
		logger.Int64("net_amount", payout.NetAmount))

	return tr.ID, nil
}
