package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/santa/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so constructing a collector that
// is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	participants      prometheus.Gauge
	generations       *prometheus.CounterVec
	pairings          *prometheus.CounterVec
	generationLatency *prometheus.HistogramVec
	invalidPairings   *prometheus.CounterVec
	deliveries        *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "santa" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "santa"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.participants = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "participants",
			Help:      "Number of participants in the current group.",
		})

		p.generations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "generations_total",
			Help:      "Total pairing generation runs by algorithm.",
		}, []string{"algorithm"})

		p.pairings = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "pairings_total",
			Help:      "Total giver-recipient pairings produced by algorithm.",
		}, []string{"algorithm"})

		p.generationLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "generation_duration_seconds",
			Help:      "Pairing generation latency in seconds by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}, []string{"algorithm"})

		p.invalidPairings = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "invalid_total",
			Help:      "Algorithm outputs that failed single-cycle verification.",
		}, []string{"algorithm"})

		p.deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "notify",
			Name:      "deliveries_total",
			Help:      "Messages handed to contact methods by contact kind.",
		}, []string{"kind"})

		p.reg.MustRegister(p.participants)
		p.reg.MustRegister(p.generations)
		p.reg.MustRegister(p.pairings)
		p.reg.MustRegister(p.generationLatency)
		p.reg.MustRegister(p.invalidPairings)
		p.reg.MustRegister(p.deliveries)
	})
}

// RecordParticipants sets the participant gauge.
func (p *PrometheusCollector) RecordParticipants(count int) {
	p.ensureRegistered()
	p.participants.Set(float64(count))
}

// RecordPairingsGenerated records one generation run.
func (p *PrometheusCollector) RecordPairingsGenerated(algorithm string, count int, duration float64) {
	p.ensureRegistered()
	p.generations.WithLabelValues(algorithm).Inc()
	p.pairings.WithLabelValues(algorithm).Add(float64(count))
	p.generationLatency.WithLabelValues(algorithm).Observe(duration)
}

// RecordInvalidPairings increments the invalid output counter.
func (p *PrometheusCollector) RecordInvalidPairings(algorithm string) {
	p.ensureRegistered()
	p.invalidPairings.WithLabelValues(algorithm).Inc()
}

// RecordDelivery increments the delivery counter for kind.
func (p *PrometheusCollector) RecordDelivery(kind string) {
	p.ensureRegistered()
	p.deliveries.WithLabelValues(kind).Inc()
}
