package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cryptobuzz"

var (
	EngineTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_engine_ticks_total",
			Help:      "Alert engine ticks by result (ok, error, empty)",
		},
		[]string{"result"},
	)

	EngineTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alert_engine_tick_duration_seconds",
			Help:      "Duration of one alert engine tick",
			Buckets:   prometheus.DefBuckets,
		},
	)

	AlertEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_evaluations_total",
			Help:      "Alert evaluations by outcome",
		},
		[]string{"outcome"},
	)

	AlertFires = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_fires_total",
			Help:      "Alert fires by alert type",
		},
		[]string{"type"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream provider requests by provider, endpoint and result",
		},
		[]string{"provider", "endpoint", "result"},
	)

	PriceCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_cache_lookups_total",
			Help:      "Per-symbol price cache lookups by result (fresh, stale, miss)",
		},
		[]string{"result"},
	)

	StreamConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stream_connections",
			Help:      "Currently open stream connections",
		},
	)

	StreamBroadcasts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_broadcasts_total",
			Help:      "Stream events broadcast by event type",
		},
		[]string{"type"},
	)

	StreamDrops = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_dropped_messages_total",
			Help:      "Messages dropped because a connection buffer was full",
		},
	)

	NewsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "news_items_ingested_total",
			Help:      "News items upserted by the ingestion loop",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// BreakerStateValue maps a gobreaker state name to the gauge value.
func BreakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}
