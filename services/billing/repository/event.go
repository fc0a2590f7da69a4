package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// RecordBillingEvent inserts a webhook audit row. Replays of an already
// recorded event ID are absorbed by the unique index, which backs up the
// Redis dedup marker after its TTL expires.
func (r *BillingRepo) RecordBillingEvent(ctx context.Context, record *models.BillingEventRecord) error {
	query := `
		INSERT INTO billing_events (event_id, event_type, org_id, summary, received_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
	`

	if record.ReceivedAt.IsZero() {
		record.ReceivedAt = time.Now()
	}

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.EventID,
		record.EventType,
		record.OrgID,
		record.Summary,
		record.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record billing event %s: %w", record.EventID, err)
	}

	return nil
}

// IsEventProcessed reports whether a webhook event ID was already handled
func (r *BillingRepo) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyWebhookEvent, eventID)

	_, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check event dedup marker: %w", err)
	}
	return true, nil
}

// MarkEventProcessed sets the dedup marker for a handled webhook event
func (r *BillingRepo) MarkEventProcessed(ctx context.Context, eventID string) error {
	key := fmt.Sprintf(constants.KeyWebhookEvent, eventID)

	if _, err := r.redisClient.SetNX(ctx, key, time.Now().Unix(), r.eventDedupTTL()); err != nil {
		return fmt.Errorf("failed to set event dedup marker: %w", err)
	}
	return nil
}

// CacheCustomerOrg remembers which organization a provider customer belongs
// to, for webhook payloads that only carry the customer ID
func (r *BillingRepo) CacheCustomerOrg(ctx context.Context, customerID, orgID string) error {
	key := fmt.Sprintf(constants.KeyCustomerOrg, customerID)

	if err := r.redisClient.Set(ctx, key, orgID, 0); err != nil {
		return fmt.Errorf("failed to cache customer org mapping: %w", err)
	}
	return nil
}

// GetOrgByCustomer resolves a provider customer ID to an organization ID.
// Returns empty without error on a cache miss.
func (r *BillingRepo) GetOrgByCustomer(ctx context.Context, customerID string) (string, error) {
	key := fmt.Sprintf(constants.KeyCustomerOrg, customerID)

	orgID, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up customer org mapping: %w", err)
	}
	return orgID, nil
}

// CacheCheckoutSession stores the live checkout session for an order until the
// session expires, so repeated checkout requests reuse the same payment page
func (r *BillingRepo) CacheCheckoutSession(ctx context.Context, orderID string, session *models.CheckoutSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}

	key := fmt.Sprintf(constants.KeyCheckoutSession, orderID)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to cache checkout session: %w", err)
	}
	return nil
}

// GetCachedCheckoutSession returns the live checkout session for an order, or
// nil when none is cached
func (r *BillingRepo) GetCachedCheckoutSession(ctx context.Context, orderID string) (*models.CheckoutSession, error) {
	key := fmt.Sprintf(constants.KeyCheckoutSession, orderID)

	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up cached checkout session: %w", err)
	}

	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached checkout session: %w", err)
	}
	return &session, nil
}

// eventDedupTTL returns the configured dedup window, defaulting to 24 hours
func (r *BillingRepo) eventDedupTTL() time.Duration {
	hours := r.cfg.Billing.EventDedupTTLHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
