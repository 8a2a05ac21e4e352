package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tzmetrics "iltz/internal/tz/metrics"
)

func TestWriteText(t *testing.T) {
	reg := NewRegistry()
	m := tzmetrics.New(reg)
	m.AddGenerated(11)
	m.IncrementOutcome(tzmetrics.OutcomeValid)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "# TYPE iltz_generated_ids_total counter")
	assert.Contains(t, out, "iltz_generated_ids_total 11")
	assert.Contains(t, out, `iltz_validations_total{outcome="valid"} 1`)
	assert.Contains(t, out, "go_build_info")
}

func TestWriteText_EmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, prometheus.NewRegistry()))
	assert.Empty(t, buf.String())
}
