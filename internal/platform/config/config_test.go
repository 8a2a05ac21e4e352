package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "iltz/pkg/domain-errors"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "warn", "")
	fs.String("log-format", "text", "")
	fs.Int("workers", 1, "")
	fs.Int("chunk-size", 10_000, "")
	fs.String("output", "text", "")
	fs.Bool("metrics", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iltz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: info
  format: json
generate:
  workers: 2
  chunk_size: 500
output: json
`), 0o600))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 2, cfg.Generate.Workers)
		assert.Equal(t, 500, cfg.Generate.ChunkSize)
		assert.Equal(t, "json", cfg.Output)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("ILTZ_GENERATE_WORKERS", "6")
		t.Setenv("ILTZ_LOG_LEVEL", "DEBUG")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Generate.Workers)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 500, cfg.Generate.ChunkSize)
	})

	t.Run("explicit flags override environment", func(t *testing.T) {
		t.Setenv("ILTZ_GENERATE_WORKERS", "6")

		cfg, err := Load(path, testFlags(t, "--workers", "3", "--metrics"))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Generate.Workers)
		assert.True(t, cfg.Metrics)
	})

	t.Run("unset flags do not mask lower layers", func(t *testing.T) {
		cfg, err := Load(path, testFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 2, cfg.Generate.Workers)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, "log level"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
		{"unknown output", func(c *Config) { c.Output = "csv" }, "output"},
		{"zero workers", func(c *Config) { c.Generate.Workers = 0 }, "workers"},
		{"negative chunk size", func(c *Config) { c.Generate.ChunkSize = -1 }, "chunk size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}
