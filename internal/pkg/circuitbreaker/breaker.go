package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lapakin/lapakin/internal/pkg/logger"
)

// Rejections returned without invoking the wrapped function
var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// State is the breaker's position in the closed -> open -> half-open cycle
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Counts tracks outcomes inside the current closed window or probe phase
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

func (c *Counts) success() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) failure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// Config tunes a breaker. IsFailure decides which errors count against the
// failure threshold, so callers can exempt cancelations and client errors.
type Config struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
	SuccessThreshold uint32
	OnStateChange    func(name string, from State, to State)
	IsFailure        func(err error) bool
}

// DefaultConfig trips after 5 consecutive failures, waits a minute before
// probing and closes again on the first successful probe.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 1,
		IsFailure: func(err error) bool {
			return err != nil
		},
	}
}

// CircuitBreaker fails fast once a downstream dependency keeps erroring, so a
// struggling service is not hammered while it recovers.
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger

	mutex  sync.RWMutex
	state  State
	counts Counts
	expiry time.Time
}

// New creates a circuit breaker in the closed state
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		logger: l,
		state:  StateClosed,
		expiry: time.Now().Add(config.Interval),
	}
}

// Execute runs fn unless the breaker rejects the request. The rejection
// errors ErrCircuitBreakerOpen and ErrTooManyRequests mean fn never ran.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.allow(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.record(err)
	return err
}

// allow admits or rejects the next request. Window resets and the
// open -> half-open move happen lazily here, on the first request after
// the respective deadline.
func (cb *CircuitBreaker) allow() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	now := time.Now()
	switch cb.state {
	case StateClosed:
		if now.After(cb.expiry) {
			cb.counts = Counts{}
			cb.expiry = now.Add(cb.config.Interval)
		}

	case StateOpen:
		if !now.After(cb.expiry) {
			return ErrCircuitBreakerOpen
		}
		cb.transition(StateHalfOpen, 0)
		cb.counts = Counts{}

	case StateHalfOpen:
		if cb.counts.Requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}

	cb.counts.Requests++
	return nil
}

// record applies the outcome of an admitted request
func (cb *CircuitBreaker) record(err error) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if !cb.config.IsFailure(err) {
		cb.counts.success()
		if cb.state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.config.SuccessThreshold {
			cb.transition(StateClosed, cb.config.Interval)
		}
		return
	}

	cb.counts.failure()
	switch cb.state {
	case StateClosed:
		if cb.counts.ConsecutiveFailures >= cb.config.FailureThreshold {
			cb.transition(StateOpen, cb.config.Timeout)
		}
	case StateHalfOpen:
		cb.transition(StateOpen, cb.config.Timeout)
	}
}

// transition moves to a new state and schedules its deadline. A zero hold
// keeps the previous expiry; only the half-open phase uses that, since it
// ends on probe outcome rather than on time.
func (cb *CircuitBreaker) transition(to State, hold time.Duration) {
	if cb.state == to {
		return
	}

	from := cb.state
	cb.state = to
	if hold > 0 {
		cb.expiry = time.Now().Add(hold)
	}

	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", from.String()),
		logger.String("to", to.String()),
		logger.Uint32("requests", cb.counts.Requests),
		logger.Uint32("consecutive_failures", cb.counts.ConsecutiveFailures))

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()
	return cb.state
}

// Counts returns a copy of the current counters
func (cb *CircuitBreaker) Counts() Counts {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()
	return cb.counts
}

// Name returns the breaker name
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

func (cb *CircuitBreaker) snapshot() CircuitBreakerStats {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()

	return CircuitBreakerStats{
		Name:                 cb.config.Name,
		State:                cb.state.String(),
		TotalRequests:        cb.counts.Requests,
		TotalSuccesses:       cb.counts.TotalSuccesses,
		TotalFailures:        cb.counts.TotalFailures,
		ConsecutiveSuccesses: cb.counts.ConsecutiveSuccesses,
		ConsecutiveFailures:  cb.counts.ConsecutiveFailures,
	}
}

// Manager hands out one breaker per downstream target, so every base URL the
// HTTP client talks to degrades independently.
type Manager struct {
	breakers map[string]*CircuitBreaker
	mutex    sync.RWMutex
	logger   *logger.ZapLogger
}

// NewManager creates an empty breaker registry
func NewManager(l *logger.ZapLogger) *Manager {
	return &Manager{
		breakers: make(map[string]*CircuitBreaker),
		logger:   l,
	}
}

// GetOrCreate returns the breaker registered under name, creating it from
// config on first use. Later calls ignore config.
func (m *Manager) GetOrCreate(name string, config Config) *CircuitBreaker {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if cb, exists := m.breakers[name]; exists {
		return cb
	}

	config.Name = name
	cb := New(config, m.logger)
	m.breakers[name] = cb

	m.logger.Info("Registered circuit breaker",
		logger.String("name", name),
		logger.Uint32("failure_threshold", config.FailureThreshold),
		logger.Duration("timeout", config.Timeout))

	return cb
}

// Execute runs fn behind the named breaker with default settings
func (m *Manager) Execute(ctx context.Context, name string, fn func(context.Context) error) error {
	return m.GetOrCreate(name, DefaultConfig(name)).Execute(ctx, fn)
}

// GetStats returns a stats snapshot per registered breaker
func (m *Manager) GetStats() map[string]CircuitBreakerStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	stats := make(map[string]CircuitBreakerStats, len(m.breakers))
	for name, cb := range m.breakers {
		stats[name] = cb.snapshot()
	}
	return stats
}

// CircuitBreakerStats is the JSON shape reported by diagnostics endpoints
type CircuitBreakerStats struct {
	Name                 string `json:"name"`
	State                string `json:"state"`
	TotalRequests        uint32 `json:"total_requests"`
	TotalSuccesses       uint32 `json:"total_successes"`
	TotalFailures        uint32 `json:"total_failures"`
	ConsecutiveSuccesses uint32 `json:"consecutive_successes"`
	ConsecutiveFailures  uint32 `json:"consecutive_failures"`
}
