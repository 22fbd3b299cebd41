package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpdatesHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serialz_updates_handled_total",
			Help: "Telegram updates processed, by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ConversationSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "serialz_conversation_sessions",
			Help: "Conversations currently in progress",
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serialz_notifications_sent_total",
			Help: "New content notifications delivered, by content kind",
		},
		[]string{"kind"},
	)

	NotificationErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "serialz_notification_errors_total",
			Help: "Notifications that could not be delivered",
		},
	)

	SweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "serialz_sweep_duration_seconds",
			Help:    "Duration of new content sweeps",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"trigger"},
	)

	SweepSeriesErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "serialz_sweep_series_errors_total",
			Help: "Series skipped during a sweep because of an error",
		},
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "serialz_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	BreakerRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serialz_circuit_breaker_rejected_total",
			Help: "Requests rejected by an open circuit breaker",
		},
		[]string{"name"},
	)
)
