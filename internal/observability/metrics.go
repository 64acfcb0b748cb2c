package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillswap_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// MatchComputationDuration records how long a full recommendation pass takes.
	MatchComputationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skillswap_match_computation_duration_seconds",
		Help:    "Duration of a full match recommendation computation",
		Buckets: prometheus.DefBuckets,
	})

	// RecommendationsServed counts served recommendations by slot kind.
	RecommendationsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_recommendations_served_total",
		Help: "Total recommendations served, by slot kind",
	}, []string{"kind"})

	// GateRejections counts messages blocked by the conversation gate.
	GateRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_message_gate_rejections_total",
		Help: "Total messages rejected by the conversation gate, by reason",
	}, []string{"reason"})

	// MessagesSent counts messages that passed the gate and were stored.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_messages_sent_total",
		Help: "Total messages accepted and stored",
	})

	// FriendshipTransitions counts friendship state transitions by resulting status.
	FriendshipTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_friendship_transitions_total",
		Help: "Total friendship state transitions, by resulting status",
	}, []string{"to_status"})
)

// TrackMatchComputation returns a function that records the elapsed
// computation time when called (e.g. defer).
func TrackMatchComputation() func() {
	start := time.Now()
	return func() {
		MatchComputationDuration.Observe(time.Since(start).Seconds())
	}
}

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
