package nsq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	nsqpkg "github.com/lapakin/lapakin/internal/pkg/nsq"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	wspkg "github.com/lapakin/lapakin/internal/pkg/websocket"
)

// OrderStatusHandler consumes order.status messages and mirrors them to the
// WebSocket connections of the selling organization
type OrderStatusHandler struct {
	wsManager *wspkg.Manager
	cfg       *models.Config
	nrApp     *newrelic.Application
	consumer  *nsqpkg.Consumer
}

// NewOrderStatusHandler creates a new order status handler
func NewOrderStatusHandler(
	wsManager *wspkg.Manager,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *OrderStatusHandler {
	return &OrderStatusHandler{
		wsManager: wsManager,
		cfg:       cfg,
		nrApp:     nrApp,
	}
}

// Start connects the consumer to nsqd and, when configured, to lookupd
func (h *OrderStatusHandler) Start() error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicOrderStatus,
		constants.ChannelPortal,
		h.cfg.NSQ.NSQDAddress,
		h.handleOrderStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to start order status consumer: %w", err)
	}

	if len(h.cfg.NSQ.LookupdAddresses) > 0 {
		if err := consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses); err != nil {
			consumer.Stop()
			return fmt.Errorf("failed to connect order status consumer to lookupd: %w", err)
		}
	}

	h.consumer = consumer
	logger.Info("Order status consumer started",
		logger.String("topic", constants.TopicOrderStatus),
		logger.String("channel", constants.ChannelPortal))

	return nil
}

// Stop stops the consumer
func (h *OrderStatusHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
		h.consumer = nil
	}
}

// handleOrderStatus processes one order status message. Returning an error
// requeues the message.
func (h *OrderStatusHandler) handleOrderStatus(message []byte) error {
	txn := h.nrApp.StartTransaction("NSQ.Portal.HandleOrderStatus")
	defer txn.End()

	ctx := newrelic.NewContext(context.Background(), txn)

	var msg models.OrderStatusMessage
	if err := nsqpkg.UnmarshalMessage(message, &msg); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return err
	}

	if msg.OrgID == "" {
		logger.DebugCtx(ctx, "Order status message carries no organization, skipping",
			logger.String("order_id", msg.OrderID),
			logger.String("status", msg.Status))
		return nil
	}

	orgID, err := uuid.Parse(msg.OrgID)
	if err != nil {
		logger.WarnCtx(ctx, "Dropping order status message with invalid organization ID",
			logger.String("order_id", msg.OrderID),
			logger.String("org_id", msg.OrgID))
		return nil
	}

	nrpkg.AddTransactionAttribute(txn, "order.id", msg.OrderID)
	nrpkg.AddTransactionAttribute(txn, "order.status", msg.Status)
	nrpkg.AddTransactionAttribute(txn, "org.id", msg.OrgID)

	logger.InfoCtx(ctx, "Broadcasting order status",
		logger.String("order_id", msg.OrderID),
		logger.String("status", msg.Status),
		logger.String("org_id", msg.OrgID),
		logger.Int("org_connections", h.wsManager.OrgClientCount(orgID)))

	h.wsManager.BroadcastToOrg(orgID, constants.EventOrderStatus, msg)
	return nil
}
