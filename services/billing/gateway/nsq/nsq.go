package gateway_nsq

import (
	"context"
	"fmt"
	"time"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	nsqpkg "github.com/lapakin/lapakin/internal/pkg/nsq"
)

// NSQGateway tells the order service about order status changes
type NSQGateway struct {
	producer *nsqpkg.Producer
}

// NewNSQGateway creates a new NSQ gateway
func NewNSQGateway(producer *nsqpkg.Producer) *NSQGateway {
	return &NSQGateway{
		producer: producer,
	}
}

// PublishOrderStatus publishes an order status change on the order.status
// topic. The order service applies it; the portal mirrors it to browsers.
func (g *NSQGateway) PublishOrderStatus(ctx context.Context, msg *models.OrderStatusMessage) error {
	if msg.UpdatedAt.IsZero() {
		msg.UpdatedAt = time.Now()
	}

	if err := g.producer.Publish(constants.TopicOrderStatus, msg); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish order status",
			logger.String("order_id", msg.OrderID),
			logger.String("status", msg.Status),
			logger.Err(err))
		return fmt.Errorf("failed to publish order status: %w", err)
	}

	logger.InfoCtx(ctx, "Published order status",
		logger.String("order_id", msg.OrderID),
		logger.String("status", msg.Status))

	return nil
}
