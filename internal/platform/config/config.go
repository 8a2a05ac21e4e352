package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	dErrors "iltz/pkg/domain-errors"
)

// EnvPrefix namespaces environment overrides, e.g. ILTZ_LOG_LEVEL.
const EnvPrefix = "ILTZ"

// Config captures everything the CLI reads from files, environment and flags.
type Config struct {
	Log      Log
	Generate Generate
	// Output is the result format: "text" or "json".
	Output string
	// Metrics dumps the prometheus text exposition to stderr on exit.
	Metrics bool
}

type Log struct {
	Level  string
	Format string
}

type Generate struct {
	Workers   int
	ChunkSize int `mapstructure:"chunk_size"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"workers":    "generate.workers",
	"chunk-size": "generate.chunk_size",
	"output":     "output",
	"metrics":    "metrics",
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		Generate: Generate{
			Workers:   1,
			ChunkSize: 10_000,
		},
		Output: "text",
	}
}

// Load resolves configuration from, in increasing precedence: defaults, the
// YAML file at path (skipped when path is empty), ILTZ_* environment
// variables, and flags explicitly set in flags (may be nil).
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("generate.workers", def.Generate.Workers)
	v.SetDefault("generate.chunk_size", def.Generate.ChunkSize)
	v.SetDefault("output", def.Output)
	v.SetDefault("metrics", def.Metrics)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q is not one of text, json", c.Log.Format))
	}
	switch c.Output {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("output %q is not one of text, json", c.Output))
	}
	if c.Generate.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Generate.Workers))
	}
	if c.Generate.ChunkSize < 1 {
		errs = append(errs, fmt.Errorf("chunk size must be at least 1, got %d", c.Generate.ChunkSize))
	}

	if len(errs) == 0 {
		return nil
	}
	return dErrors.Wrap(errors.Join(errs...), dErrors.CodeInvalidInput, "invalid configuration")
}
