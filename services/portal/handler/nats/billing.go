package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	natspkg "github.com/lapakin/lapakin/internal/pkg/nats"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	wspkg "github.com/lapakin/lapakin/internal/pkg/websocket"
)

// NatsHandler consumes billing events from JetStream and fans them out to the
// WebSocket connections of the event's organization
type NatsHandler struct {
	wsManager  *wspkg.Manager
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
	nrApp      *newrelic.Application
}

// NewNatsHandler creates a new portal NATS handler
func NewNatsHandler(
	wsManager *wspkg.Manager,
	natsClient *natspkg.Client,
	nrApp *newrelic.Application,
) *NatsHandler {
	return &NatsHandler{
		wsManager:  wsManager,
		natsClient: natsClient,
		consumers:  make([]*natspkg.Consumer, 0),
		nrApp:      nrApp,
	}
}

// InitConsumers starts the durable billing-events consumer
func (h *NatsHandler) InitConsumers() error {
	config := natspkg.PortalEventsConsumerConfig()
	logger.Info("Starting billing events consumer",
		logger.String("stream", config.StreamName),
		logger.String("consumer", config.ConsumerName),
		logger.String("filter_subject", config.FilterSubject))

	consumer, err := natspkg.NewJetStreamConsumer(h.natsClient, config, h.handleBillingEventJS)
	if err != nil {
		return fmt.Errorf("failed to start billing events consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	return nil
}

// Stop stops all running consumers
func (h *NatsHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = h.consumers[:0]
}

// handleBillingEventJS processes one billing event delivery. Returning an
// error NAKs the message for redelivery.
func (h *NatsHandler) handleBillingEventJS(msg jetstream.Msg) error {
	txn := h.nrApp.StartTransaction("NATS.Portal.HandleBillingEvent")
	defer txn.End()

	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject())
	nrpkg.AddTransactionAttribute(txn, "message.size", len(msg.Data()))

	ctx := newrelic.NewContext(context.Background(), txn)

	if err := h.handleBillingEvent(ctx, msg.Data()); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Error handling billing event",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		return err
	}

	return nil
}

func (h *NatsHandler) handleBillingEvent(ctx context.Context, msg []byte) error {
	var event models.BillingEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal billing event: %w", err)
	}

	orgID, err := uuid.Parse(event.OrgID)
	if err != nil {
		// A malformed organization ID will never parse on redelivery either
		logger.WarnCtx(ctx, "Dropping billing event with invalid organization ID",
			logger.String("event_id", event.ID),
			logger.String("event_type", event.Type),
			logger.String("org_id", event.OrgID))
		return nil
	}

	if txn := nrpkg.FromContext(ctx); txn != nil {
		nrpkg.AddTransactionAttribute(txn, "event.id", event.ID)
		nrpkg.AddTransactionAttribute(txn, "event.type", event.Type)
		nrpkg.AddTransactionAttribute(txn, "org.id", event.OrgID)
	}

	logger.InfoCtx(ctx, "Broadcasting billing event",
		logger.String("event_id", event.ID),
		logger.String("event_type", event.Type),
		logger.String("org_id", event.OrgID),
		logger.Int("org_connections", h.wsManager.OrgClientCount(orgID)))

	h.wsManager.BroadcastToOrg(orgID, event.Type, event)
	return nil
}
