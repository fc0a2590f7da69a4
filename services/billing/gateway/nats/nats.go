package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	natspkg "github.com/lapakin/lapakin/internal/pkg/nats"
)

// NATSGateway publishes billing lifecycle events on JetStream
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishBillingEvent publishes a billing event on the subject matching its
// type. The event ID is used as the JetStream message ID, so a redelivered
// source event republished here is dropped by the broker.
func (g *NATSGateway) PublishBillingEvent(ctx context.Context, event *models.BillingEvent) error {
	subject, err := subjectForEvent(event.Type)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal billing event: %w", err)
	}

	opts := natspkg.PublishOptions{
		Subject: subject,
		Data:    data,
		MsgID:   messageID(event),
		Timeout: 10 * time.Second,
	}

	if err := g.client.PublishWithOptions(opts); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish billing event to JetStream",
			logger.String("event_type", event.Type),
			logger.String("org_id", event.OrgID),
			logger.Err(err))
		return fmt.Errorf("failed to publish billing event: %w", err)
	}

	logger.InfoCtx(ctx, "Published billing event to JetStream",
		logger.String("event_type", event.Type),
		logger.String("org_id", event.OrgID),
		logger.String("subject", subject))

	return nil
}

// messageID picks the broker dedup key: the event's own ID when set, a
// time-based fallback otherwise so publishing is never blocked on a missing ID
func messageID(event *models.BillingEvent) string {
	if event.ID != "" {
		return event.ID
	}
	return fmt.Sprintf("%s-%s-%d", event.Type, event.OrgID, time.Now().UnixNano())
}

// subjectForEvent maps a billing event type onto its JetStream subject
func subjectForEvent(eventType string) (string, error) {
	switch eventType {
	case constants.EventSubscriptionUpdated:
		return constants.SubjectSubscriptionUpdated, nil
	case constants.EventSubscriptionCanceled:
		return constants.SubjectSubscriptionCanceled, nil
	case constants.EventPayoutSettled:
		return constants.SubjectPayoutSettled, nil
	case constants.EventAccountUpdated:
		return constants.SubjectAccountUpdated, nil
	default:
		return "", fmt.Errorf("unknown billing event type: %s", eventType)
	}
}
