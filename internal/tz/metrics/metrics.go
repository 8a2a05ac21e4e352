package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Validation outcomes.
const (
	OutcomeValid     = "valid"
	OutcomeInvalid   = "invalid"
	OutcomeMalformed = "malformed"
)

// Metrics provides observability for ID validation and generation.
type Metrics struct {
	// Validation results by outcome: valid, invalid (bad check digit),
	// malformed (did not parse)
	ValidationOutcome *prometheus.CounterVec

	GeneratedTotal prometheus.Counter

	// Generate calls whose bounds were clamped or rounded
	RangesClamped prometheus.Counter

	GenerateLatency prometheus.Histogram
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iltz_validations_total",
			Help: "Total ID validations by outcome",
		}, []string{"outcome"}),

		GeneratedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "iltz_generated_ids_total",
			Help: "Total valid IDs produced by generation",
		}),

		RangesClamped: factory.NewCounter(prometheus.CounterOpts{
			Name: "iltz_generate_ranges_clamped_total",
			Help: "Generation requests whose bounds were clamped or rounded down",
		}),

		GenerateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "iltz_generate_duration_seconds",
			Help:    "Duration of a full generation run including output",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60, 300},
		}),
	}
}

// IncrementOutcome records a validation outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.ValidationOutcome.WithLabelValues(outcome).Inc()
	}
}

// AddGenerated records n generated IDs.
func (m *Metrics) AddGenerated(n int) {
	if m != nil && n > 0 {
		m.GeneratedTotal.Add(float64(n))
	}
}

// IncrementClamped records a generation request with adjusted bounds.
func (m *Metrics) IncrementClamped() {
	if m != nil {
		m.RangesClamped.Inc()
	}
}

// ObserveGenerateLatency records the duration of a generation run.
func (m *Metrics) ObserveGenerateLatency(d time.Duration) {
	if m != nil {
		m.GenerateLatency.Observe(d.Seconds())
	}
}
