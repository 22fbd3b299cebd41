package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/metrics"
	"github.com/sony/gobreaker/v2"
)

var errServerError = errors.New("server error")

// BreakerClient stops calling an upstream that keeps failing. Transport errors and 5xx
// responses count as failures; 5xx responses are still returned to the caller.
type BreakerClient struct {
	client HTTPClient
	cb     *gobreaker.CircuitBreaker[*http.Response]
	name   string
}

type BreakerOption func(*gobreaker.Settings)

// WithBreakerTimeout sets how long the breaker stays open before probing again
func WithBreakerTimeout(d time.Duration) BreakerOption {
	return func(s *gobreaker.Settings) {
		s.Timeout = d
	}
}

// WithConsecutiveFailures sets how many failures in a row open the breaker
func WithConsecutiveFailures(n uint32) BreakerOption {
	return func(s *gobreaker.Settings) {
		s.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= n
		}
	}
}

func NewBreakerClient(name string, client HTTPClient, opts ...BreakerOption) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Infow("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	}

	for _, opt := range opts {
		opt(&settings)
	}

	metrics.BreakerState.WithLabelValues(name).Set(0)

	return &BreakerClient{
		client: client,
		cb:     gobreaker.NewCircuitBreaker[*http.Response](settings),
		name:   name,
	}
}

func (b *BreakerClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := b.cb.Execute(func() (*http.Response, error) {
		resp, err := b.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerError
		}

		return resp, nil
	})

	if errors.Is(err, errServerError) {
		return resp, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.BreakerRejected.WithLabelValues(b.name).Inc()
		return nil, fmt.Errorf("%s unavailable: %w", b.name, err)
	}

	return resp, err
}

// State reports the breaker state
func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
