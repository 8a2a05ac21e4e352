// Package cli implements the tz command line: validating candidate IDs and
// generating valid ranges.
//
// The library generator clamps out-of-range requests. The generate command
// does not: it rejects START > END and END above the largest ID with a usage
// error, and never reaches the generator.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"iltz/internal/platform/config"
	"iltz/internal/platform/logger"
	"iltz/internal/platform/metrics"
	"iltz/internal/tz/service"
	dErrors "iltz/pkg/domain-errors"
	"iltz/pkg/domain/tz"
	"iltz/pkg/platform/dedupe"
)

// Version is overridden at build time with -ldflags "-X iltz/internal/cli.Version=...".
var Version = "dev"

const usageHint = "Run with --help for more information"

type Option func(*app)

// WithServiceFactory replaces how the Service is built. Tests use it to
// inject a mock.
func WithServiceFactory(f ServiceFactory) Option {
	return func(a *app) {
		a.newService = f
	}
}

type app struct {
	newService ServiceFactory

	configPath string
	unique     bool

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	svc      Service
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	a := &app{newService: newService}
	for _, opt := range opts {
		opt(a)
	}

	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	if a.registry != nil && a.cfg.Metrics {
		if werr := metrics.WriteText(stderr, a.registry); werr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", werr)
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if dErrors.HasCode(err, dErrors.CodeInvalidInput) {
			fmt.Fprintln(stderr, usageHint)
		}
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tz [ID...]",
		Short: "Validate Israeli ID numbers (TZ)",
		Long: `Validate Israeli ID numbers (TZ).

Each ID is printed zero-padded to nine digits followed by true or false.
IDs that cannot be parsed are printed as given followed by false.
Without arguments this help is printed.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runValidate,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid flag")
	})

	def := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	pf.String("log-level", def.Log.Level, "Log level (debug, info, warn, error)")
	pf.String("log-format", def.Log.Format, "Log format (text, json)")
	pf.StringP("output", "o", def.Output, "Output format (text, json)")
	pf.Int("workers", def.Generate.Workers, "Concurrent workers for generate")
	pf.Int("chunk-size", def.Generate.ChunkSize, "Base values per generate work unit")
	pf.Bool("metrics", def.Metrics, "Write prometheus metrics to stderr on exit")

	cmd.Flags().BoolVarP(&a.unique, "unique", "u", false, "Skip IDs already listed (compared after zero-padding)")

	cmd.AddCommand(a.generateCommand(), a.versionCommand())
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		if dErrors.CodeOf(err) == "" {
			return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid configuration")
		}
		return err
	}
	a.cfg = cfg
	a.logger = logger.New(cmd.ErrOrStderr(), cfg.Log)
	a.registry = metrics.NewRegistry()

	svc, err := a.newService(cfg, a.logger, a.registry)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid configuration")
	}
	a.svc = svc
	return nil
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	candidates := args
	if a.unique {
		candidates = dedupe.ByKey(args, canonicalKey)
	}

	results := a.svc.CheckAll(cmd.Context(), candidates)

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, r := range results {
		if err := a.writeResult(w, r); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return w.Flush()
}

// canonicalKey compares parseable candidates by their padded form and the
// rest by trimmed text. The prefix keeps the two spaces disjoint.
func canonicalKey(s string) string {
	if id, err := tz.ParseString(s); err == nil {
		return id.String()
	}
	return "\x00" + strings.TrimSpace(s)
}

type resultJSON struct {
	Input string `json:"input"`
	ID    *tz.ID `json:"id,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

func (a *app) writeResult(w io.Writer, r service.Result) error {
	if a.cfg.Output == "json" {
		out := resultJSON{Input: r.Input, Valid: r.Valid}
		if r.Err != nil {
			out.Error = r.Err.Error()
			out.Code = string(dErrors.CodeOf(r.Err))
		} else {
			id := r.ID
			out.ID = &id
		}
		return json.NewEncoder(w).Encode(out)
	}

	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s false\n", r.Input)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %t\n", r.ID, r.Valid)
	return err
}

func (a *app) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate START END",
		Short: "Generates a list of valid TZ values",
		Long: `Generates every valid TZ whose first eight digits fall between START and END.

START and END are inclusive and END may be at most 999999999.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid arguments")
			}
			return nil
		},
		RunE: a.runGenerate,
	}
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	start, err := parseBound("START", args[0])
	if err != nil {
		return err
	}
	end, err := parseBound("END", args[1])
	if err != nil {
		return err
	}
	if start > end {
		return dErrors.New(dErrors.CodeInvalidInput, "START must not be greater than END")
	}
	if end > tz.MaxValue {
		return dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("END must not be greater than %d", tz.MaxValue))
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	enc := json.NewEncoder(w)
	emit := func(id tz.ID) error {
		if a.cfg.Output == "json" {
			return enc.Encode(id)
		}
		_, err := fmt.Fprintln(w, id)
		return err
	}

	if _, err := a.svc.Generate(cmd.Context(), start, end, emit); err != nil {
		_ = w.Flush()
		return fmt.Errorf("generate: %w", err)
	}
	return w.Flush()
}

func parseBound(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput,
			fmt.Sprintf("%s must be a non-negative integer", name)).WithInput(s)
	}
	return n, nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tz version %s\n", Version)
		},
	}
}
