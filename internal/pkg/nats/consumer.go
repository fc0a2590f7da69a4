package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/lapakin/lapakin/internal/pkg/logger"
)

// MessageHandler processes raw payloads from core NATS subscriptions
type MessageHandler func(message []byte) error

// JetStreamMessageHandler processes JetStream messages. Returning an error
// NAKs the message so the server redelivers it.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Consumer handles consuming messages from NATS subjects and JetStream
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
	consumer     jetstream.Consumer
	consumeCtx   jetstream.ConsumeContext
	ctx          context.Context
	cancelFunc   context.CancelFunc
	isJetStream  bool
}

// NewConsumer subscribes to a core NATS subject on its own connection,
// optionally inside a queue group
func NewConsumer(subject, queueGroup, address string, handler MessageHandler) (*Consumer, error) {
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	msgHandler := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	if queueGroup != "" {
		subscription, err = conn.QueueSubscribe(subject, queueGroup, msgHandler)
	} else {
		subscription, err = conn.Subscribe(subject, msgHandler)
	}
	if err != nil {
		conn.Close()
		cancel()
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{
		conn:         conn,
		subscription: subscription,
		ctx:          ctx,
		cancelFunc:   cancel,
		isJetStream:  false,
	}, nil
}

// NewJetStreamConsumer creates a durable consumer on the client's JetStream
// context and starts delivering messages to the handler
func NewJetStreamConsumer(client *Client, config ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	if err := client.CreateConsumer(config); err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	consumer, ok := client.getConsumer(config.StreamName, config.ConsumerName)
	if !ok {
		return nil, fmt.Errorf("consumer %s not found after creation",
			consumerKey(config.StreamName, config.ConsumerName))
	}

	ctx, cancel := context.WithCancel(context.Background())

	jsConsumer := &Consumer{
		conn:        client.conn,
		consumer:    consumer,
		ctx:         ctx,
		cancelFunc:  cancel,
		isJetStream: true,
	}

	if err := jsConsumer.startConsuming(handler); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	return jsConsumer, nil
}

func (c *Consumer) startConsuming(handler JetStreamMessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.consumeCtx = consumeCtx

	go func() {
		<-c.ctx.Done()
		if c.consumeCtx != nil {
			c.consumeCtx.Stop()
		}
	}()

	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
		c.consumeCtx = nil
	}

	if c.subscription != nil {
		c.subscription.Unsubscribe()
		c.subscription = nil
	}

	if c.cancelFunc != nil {
		c.cancelFunc()
	}

	// Core consumers own their connection; JetStream consumers share the
	// client's connection and must not close it.
	if !c.isJetStream && c.conn != nil {
		c.conn.Close()
	}
}

// IsActive reports whether the consumer is still receiving messages
func (c *Consumer) IsActive() bool {
	if c.isJetStream {
		return c.consumeCtx != nil
	}
	return c.subscription != nil && c.subscription.IsValid()
}
