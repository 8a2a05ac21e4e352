package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementOutcome(OutcomeValid)
	m.IncrementOutcome(OutcomeValid)
	m.IncrementOutcome(OutcomeMalformed)
	m.AddGenerated(11)
	m.AddGenerated(0)
	m.IncrementClamped()
	m.ObserveGenerateLatency(5 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationOutcome.WithLabelValues(OutcomeValid)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ValidationOutcome.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationOutcome.WithLabelValues(OutcomeMalformed)))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.GeneratedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RangesClamped))

	count, err := testutil.GatherAndCount(reg, "iltz_generate_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome(OutcomeValid)
		m.AddGenerated(3)
		m.IncrementClamped()
		m.ObserveGenerateLatency(time.Second)
	})
}

func TestNew_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) }, "second registration on the same registry must collide")
	assert.NotPanics(t, func() { New(prometheus.NewRegistry()) })
}
