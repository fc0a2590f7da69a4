package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

// CreatePayout inserts a pending payout ledger row
func (r *BillingRepo) CreatePayout(ctx context.Context, payout *models.Payout) error {
	query := `
		INSERT INTO payouts (
			id, org_id, gross_amount, fee_amount, net_amount,
			currency, transfer_id, status, reference, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		payout.ID,
		payout.OrgID,
		payout.GrossAmount,
		payout.FeeAmount,
		payout.NetAmount,
		payout.Currency,
		payout.TransferID,
		payout.Status,
		payout.Reference,
		payout.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payout: %w", err)
	}

	return nil
}

// MarkPayoutSettled promotes a payout to settled with its transfer ID
func (r *BillingRepo) MarkPayoutSettled(ctx context.Context, id uuid.UUID, transferID string, settledAt time.Time) error {
	query := `
		UPDATE payouts
		SET status = $1, transfer_id = $2, settled_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.PayoutStatusSettled, transferID, settledAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark payout settled: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check payout update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("payout %s not found", id)
	}

	return nil
}

// MarkPayoutFailed records that the transfer for a payout did not go through
func (r *BillingRepo) MarkPayoutFailed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE payouts
		SET status = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, models.PayoutStatusFailed, id)
	if err != nil {
		return fmt.Errorf("failed to mark payout failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check payout update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("payout %s not found", id)
	}

	return nil
}

// ListPayoutsByOrg returns an organization's payouts, newest first
func (r *BillingRepo) ListPayoutsByOrg(ctx context.Context, orgID string) ([]models.Payout, error) {
	query := `
		SELECT id, org_id, gross_amount, fee_amount, net_amount,
		       currency, transfer_id, status, reference, created_at, settled_at
		FROM payouts
		WHERE org_id = $1
		ORDER BY created_at DESC
	`

	var payouts []models.Payout
	if err := r.db.SelectContext(ctx, &payouts, query, orgID); err != nil {
		return nil, fmt.Errorf("failed to list payouts for org %s: %w", orgID, err)
	}

	return payouts, nil
}
