package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lapakin/lapakin/internal/pkg/logger"
)

var errUpstream = errors.New("upstream unavailable")

func newTestBreaker(config Config) *CircuitBreaker {
	return New(config, &logger.ZapLogger{Logger: zap.NewNop()})
}

func testConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 3,
		SuccessThreshold: 1,
		IsFailure: func(err error) bool {
			return err != nil
		},
	}
}

func fail(ctx context.Context) error {
	return errUpstream
}

func succeed(ctx context.Context) error {
	return nil
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(99).String())
}

func TestExecute_ClosedPassesThrough(t *testing.T) {
	cb := newTestBreaker(testConfig("core-service"))

	err := cb.Execute(context.Background(), succeed)

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().TotalSuccesses)
}

func TestExecute_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(testConfig("core-service"))

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), fail)
		assert.ErrorIs(t, err, errUpstream)
	}

	assert.Equal(t, StateOpen, cb.State())

	// Open circuit rejects without invoking the function
	called := false
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestExecute_SuccessResetsConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(testConfig("core-service"))

	require.Error(t, cb.Execute(context.Background(), fail))
	require.Error(t, cb.Execute(context.Background(), fail))
	require.NoError(t, cb.Execute(context.Background(), succeed))
	require.Error(t, cb.Execute(context.Background(), fail))
	require.Error(t, cb.Execute(context.Background(), fail))

	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_HalfOpenClosesOnSuccess(t *testing.T) {
	cb := newTestBreaker(testConfig("core-service"))

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(context.Background(), fail))
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), succeed)
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_HalfOpenReopensOnFailure(t *testing.T) {
	cb := newTestBreaker(testConfig("core-service"))

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(context.Background(), fail))
	}

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), fail)
	assert.ErrorIs(t, err, errUpstream)
	assert.Equal(t, StateOpen, cb.State())
}

func TestExecute_HalfOpenLimitsRequests(t *testing.T) {
	config := testConfig("core-service")
	config.SuccessThreshold = 2
	cb := newTestBreaker(config)

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(context.Background(), fail))
	}

	time.Sleep(60 * time.Millisecond)

	// First probe is allowed but one success is below the threshold,
	// so the breaker stays half-open and rejects further probes.
	require.NoError(t, cb.Execute(context.Background(), succeed))
	require.Equal(t, StateHalfOpen, cb.State())

	err := cb.Execute(context.Background(), succeed)
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestExecute_CustomIsFailure(t *testing.T) {
	config := testConfig("core-service")
	config.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, context.Canceled)
	}
	cb := newTestBreaker(config)

	for i := 0; i < 5; i++ {
		err := cb.Execute(context.Background(), func(ctx context.Context) error {
			return context.Canceled
		})
		assert.ErrorIs(t, err, context.Canceled)
	}

	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_OnStateChangeCallback(t *testing.T) {
	var transitions []string
	config := testConfig("core-service")
	config.OnStateChange = func(name string, from State, to State) {
		transitions = append(transitions, from.String()+"->"+to.String())
	}
	cb := newTestBreaker(config)

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(context.Background(), fail))
	}
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, cb.Execute(context.Background(), succeed))

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, transitions)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig("billing-events")

	assert.Equal(t, "billing-events", config.Name)
	assert.Equal(t, uint32(1), config.MaxRequests)
	assert.Equal(t, uint32(5), config.FailureThreshold)
	assert.Equal(t, uint32(1), config.SuccessThreshold)
	assert.True(t, config.IsFailure(errors.New("boom")))
	assert.False(t, config.IsFailure(nil))
}

func TestManager_GetOrCreateReturnsSameInstance(t *testing.T) {
	m := NewManager(&logger.ZapLogger{Logger: zap.NewNop()})

	first := m.GetOrCreate("core-service", DefaultConfig("core-service"))
	second := m.GetOrCreate("core-service", DefaultConfig("core-service"))

	assert.Same(t, first, second)
	assert.Equal(t, "core-service", first.Name())
}

func TestManager_Execute(t *testing.T) {
	m := NewManager(&logger.ZapLogger{Logger: zap.NewNop()})

	err := m.Execute(context.Background(), "core-service", succeed)
	assert.NoError(t, err)

	err = m.Execute(context.Background(), "core-service", fail)
	assert.ErrorIs(t, err, errUpstream)

	stats := m.GetStats()
	require.Contains(t, stats, "core-service")
	assert.Equal(t, "CLOSED", stats["core-service"].State)
	assert.Equal(t, uint32(2), stats["core-service"].TotalRequests)
	assert.Equal(t, uint32(1), stats["core-service"].TotalSuccesses)
	assert.Equal(t, uint32(1), stats["core-service"].TotalFailures)
}
