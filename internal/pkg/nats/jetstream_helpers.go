package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/lapakin/lapakin/internal/pkg/constants"
)

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder creates a new stream configuration builder
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:      name,
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  100 * 1024 * 1024,
			MaxMsgs:   1000000,
			Discard:   jetstream.DiscardOld,
		},
	}
}

// WithSubjects sets the subjects for the stream
func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

// WithRetention sets the retention policy
func (b *StreamConfigBuilder) WithRetention(retention jetstream.RetentionPolicy) *StreamConfigBuilder {
	b.config.Retention = retention
	return b
}

// WithStorage sets the storage type
func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

// WithMaxAge sets the maximum age for messages
func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

// WithMaxBytes sets the maximum bytes for the stream
func (b *StreamConfigBuilder) WithMaxBytes(maxBytes int64) *StreamConfigBuilder {
	b.config.MaxBytes = maxBytes
	return b
}

// WithMaxMsgs sets the maximum number of messages
func (b *StreamConfigBuilder) WithMaxMsgs(maxMsgs int64) *StreamConfigBuilder {
	b.config.MaxMsgs = maxMsgs
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder creates a new consumer configuration builder
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    3,
			ReplayPolicy:  jetstream.ReplayInstantPolicy,
			MaxAckPending: 1000,
		},
	}
}

// WithSubject sets the filter subject
func (b *ConsumerConfigBuilder) WithSubject(subject string) *ConsumerConfigBuilder {
	b.config.FilterSubject = subject
	return b
}

// WithDeliverPolicy sets the deliver policy
func (b *ConsumerConfigBuilder) WithDeliverPolicy(policy jetstream.DeliverPolicy) *ConsumerConfigBuilder {
	b.config.DeliverPolicy = policy
	return b
}

// WithAckWait sets the acknowledgment wait time
func (b *ConsumerConfigBuilder) WithAckWait(ackWait time.Duration) *ConsumerConfigBuilder {
	b.config.AckWait = ackWait
	return b
}

// WithMaxDeliver sets the maximum delivery attempts
func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// WithMaxAckPending sets the maximum pending acknowledgments
func (b *ConsumerConfigBuilder) WithMaxAckPending(maxAckPending int) *ConsumerConfigBuilder {
	b.config.MaxAckPending = maxAckPending
	return b
}

// Build returns the consumer configuration
func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}

// DefaultStreamConfigs returns the streams the billing service publishes to.
// Billing events double as an audit trail, so the stream keeps messages for
// seven days regardless of consumer interest.
func DefaultStreamConfigs() []StreamConfig {
	return []StreamConfig{
		NewStreamConfigBuilder(constants.StreamBilling).
			WithSubjects(constants.SubjectBillingAll).
			WithRetention(jetstream.LimitsPolicy).
			WithStorage(jetstream.FileStorage).
			WithMaxAge(7 * 24 * time.Hour).
			WithMaxBytes(200 * 1024 * 1024).
			WithMaxMsgs(2000000).
			Build(),
	}
}

// PortalEventsConsumerConfig returns the durable consumer the portal uses to
// fan billing events out to connected websocket clients
func PortalEventsConsumerConfig() ConsumerConfig {
	return NewConsumerConfigBuilder(constants.StreamBilling, "portal_billing_events").
		WithSubject(constants.SubjectBillingAll).
		WithDeliverPolicy(jetstream.DeliverNewPolicy).
		WithMaxDeliver(3).
		Build()
}
