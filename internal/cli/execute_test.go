package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the command line against the real service and metrics registry.

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecute_Validate(t *testing.T) {
	code, out, _ := execute(t, "37015971", "abc", "1234567890", "37015936")
	require.Equal(t, 0, code)
	assert.Equal(t, "037015971 true\nabc false\n1234567890 false\n037015936 false\n", out)
}

func TestExecute_Generate(t *testing.T) {
	want := "037015955\n037015963\n037015971\n037015989\n"

	for _, args := range [][]string{
		{"generate", "37015955", "37015985"},
		{"--workers", "4", "--chunk-size", "1", "generate", "37015955", "37015985"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, out, _ := execute(t, args...)
			require.Equal(t, 0, code)
			assert.Equal(t, want, out)
		})
	}
}

func TestExecute_GenerateOutputValidates(t *testing.T) {
	code, out, _ := execute(t, "generate", "1000", "1200")
	require.Equal(t, 0, code)

	ids := strings.Fields(out)
	require.Len(t, ids, 21)

	code, out, _ = execute(t, ids...)
	require.Equal(t, 0, code)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasSuffix(line, " true"), line)
	}
}

func TestExecute_RejectsRanges(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"inverted", []string{"generate", "10", "5"}, "START must not be greater than END"},
		{"too large", []string{"generate", "0", "1000000000"}, "END must not be greater than 999999999"},
		{"negative", []string{"generate", "--", "-1", "5"}, "START must be a non-negative integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := execute(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.msg)
			assert.Contains(t, errOut, usageHint)
		})
	}
}

func TestExecute_MetricsDump(t *testing.T) {
	code, _, errOut := execute(t, "--metrics", "generate", "37015955", "37015985")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "iltz_generated_ids_total 4")
	assert.Contains(t, errOut, "iltz_generate_duration_seconds_count 1")
}

func TestExecute_JSONLines(t *testing.T) {
	code, out, _ := execute(t, "-o", "json", "37015971", "1234567890")
	require.Equal(t, 0, code)
	assert.Equal(t,
		`{"input":"37015971","id":"037015971","valid":true}`+"\n"+
			`{"input":"1234567890","valid":false,"error":"invalid ID length: 1234567890","code":"invalid_length"}`+"\n",
		out)
}
