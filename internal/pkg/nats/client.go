package nats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/lapakin/lapakin/internal/pkg/logger"
)

const defaultPublishTimeout = 5 * time.Second

// StreamConfig describes a JetStream stream managed by this client
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
}

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	ReplayPolicy  jetstream.ReplayPolicy
	RateLimitBps  uint64
	MaxAckPending int
}

// PublishOptions controls a single JetStream publish
type PublishOptions struct {
	Subject string
	Data    []byte
	MsgID   string
	Timeout time.Duration
}

// Client wraps a NATS connection with JetStream enabled
type Client struct {
	conn      *nats.Conn
	js        jetstream.JetStream
	mu        sync.RWMutex
	streams   map[string]jetstream.Stream
	consumers map[string]jetstream.Consumer
}

// NewClient connects to the NATS server and initializes JetStream
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	return &Client{
		conn:      conn,
		js:        js,
		streams:   make(map[string]jetstream.Stream),
		consumers: make(map[string]jetstream.Consumer),
	}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// EnsureStream creates the stream if it does not exist, or updates it to
// match the given configuration
func (c *Client) EnsureStream(config StreamConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      config.Name,
		Subjects:  config.Subjects,
		Retention: config.Retention,
		Storage:   config.Storage,
		Replicas:  config.Replicas,
		MaxAge:    config.MaxAge,
		MaxBytes:  config.MaxBytes,
		MaxMsgs:   config.MaxMsgs,
		Discard:   config.Discard,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", config.Name, err)
	}

	c.mu.Lock()
	c.streams[config.Name] = stream
	c.mu.Unlock()

	logger.Info("JetStream stream ready",
		logger.String("stream", config.Name),
		logger.Strings("subjects", config.Subjects))

	return nil
}

// CreateConsumer creates or updates a durable consumer on a stream
func (c *Client) CreateConsumer(config ConsumerConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, config.StreamName, jetstream.ConsumerConfig{
		Name:          config.ConsumerName,
		Durable:       config.ConsumerName,
		FilterSubject: config.FilterSubject,
		DeliverPolicy: config.DeliverPolicy,
		AckPolicy:     config.AckPolicy,
		AckWait:       config.AckWait,
		MaxDeliver:    config.MaxDeliver,
		ReplayPolicy:  config.ReplayPolicy,
		RateLimit:     config.RateLimitBps,
		MaxAckPending: config.MaxAckPending,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s on stream %s: %w",
			config.ConsumerName, config.StreamName, err)
	}

	c.mu.Lock()
	c.consumers[consumerKey(config.StreamName, config.ConsumerName)] = consumer
	c.mu.Unlock()

	return nil
}

func consumerKey(stream, consumer string) string {
	return fmt.Sprintf("%s:%s", stream, consumer)
}

func (c *Client) getConsumer(stream, name string) (jetstream.Consumer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	consumer, ok := c.consumers[consumerKey(stream, name)]
	return consumer, ok
}

// Publish sends a message through JetStream with the default timeout
func (c *Client) Publish(subject string, data []byte) error {
	return c.PublishWithOptions(PublishOptions{Subject: subject, Data: data})
}

// PublishWithOptions sends a message through JetStream. Setting MsgID enables
// server-side deduplication within the stream's duplicate window.
func (c *Client) PublishWithOptions(opts PublishOptions) error {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultPublishTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var pubOpts []jetstream.PublishOpt
	if opts.MsgID != "" {
		pubOpts = append(pubOpts, jetstream.WithMsgID(opts.MsgID))
	}

	if _, err := c.js.Publish(ctx, opts.Subject, opts.Data, pubOpts...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", opts.Subject, err)
	}

	return nil
}

// HealthCheck verifies the connection and JetStream availability
func (c *Client) HealthCheck(ctx context.Context) error {
	if c.conn == nil || !c.conn.IsConnected() {
		return fmt.Errorf("NATS not connected")
	}
	if _, err := c.js.AccountInfo(ctx); err != nil {
		return fmt.Errorf("JetStream unavailable: %w", err)
	}
	return nil
}

// Subscribe subscribes to a core NATS subject on the shared connection
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return sub, nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
