package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"iltz/internal/tz/metrics"
	dErrors "iltz/pkg/domain-errors"
	"iltz/pkg/domain/tz"
)

const (
	tracerName = "iltz/internal/tz/service"

	// DefaultChunkSize is the number of base values one worker computes
	// before its results are emitted.
	DefaultChunkSize = 10_000
	MaxChunkSize     = 10_000_000
)

// Result is the outcome of checking one candidate.
type Result struct {
	Input string
	ID    tz.ID
	Valid bool
	// Err is set when Input did not parse. It carries a domain error code
	// and the offending input.
	Err error
}

// Outcome classifies r for metrics and output.
func (r Result) Outcome() string {
	switch {
	case r.Err != nil:
		return metrics.OutcomeMalformed
	case r.Valid:
		return metrics.OutcomeValid
	default:
		return metrics.OutcomeInvalid
	}
}

// Service validates candidate IDs and streams generated ranges.
type Service struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	workers   int
	chunkSize int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithWorkers sets how many chunks Generate computes concurrently.
// One worker generates sequentially.
func WithWorkers(n int) Option {
	return func(s *Service) {
		s.workers = n
	}
}

func WithChunkSize(n int) Option {
	return func(s *Service) {
		s.chunkSize = n
	}
}

func New(opts ...Option) (*Service, error) {
	svc := &Service{
		workers:   1,
		chunkSize: DefaultChunkSize,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", svc.workers)
	}
	if svc.chunkSize < 1 || svc.chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("chunk size must be between 1 and %d, got %d", MaxChunkSize, svc.chunkSize)
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.DiscardHandler)
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer(tracerName)
	}

	return svc, nil
}

// Check parses and validates one candidate. Malformed candidates are
// reported in the Result, never as a failure of the call.
func (s *Service) Check(ctx context.Context, candidate string) Result {
	ctx, span := s.tracer.Start(ctx, "tz.Check")
	defer span.End()

	r := s.check(ctx, candidate)
	span.SetAttributes(attribute.String("tz.outcome", r.Outcome()))
	return r
}

// CheckAll checks every candidate, preserving input order.
func (s *Service) CheckAll(ctx context.Context, candidates []string) []Result {
	ctx, span := s.tracer.Start(ctx, "tz.CheckAll",
		trace.WithAttributes(attribute.Int("tz.candidates", len(candidates))),
	)
	defer span.End()

	results := make([]Result, 0, len(candidates))
	valid := 0
	for _, c := range candidates {
		r := s.check(ctx, c)
		if r.Valid {
			valid++
		}
		results = append(results, r)
	}

	span.SetAttributes(attribute.Int("tz.valid", valid))
	s.logger.InfoContext(ctx, "candidates checked",
		"total", len(results),
		"valid", valid,
	)
	return results
}

// check logs lengths and codes only; candidates are personal data.
func (s *Service) check(ctx context.Context, candidate string) Result {
	id, err := tz.ParseString(candidate)
	if err != nil {
		s.metrics.IncrementOutcome(metrics.OutcomeMalformed)
		s.logger.DebugContext(ctx, "candidate rejected",
			"length", len(candidate),
			"code", dErrors.CodeOf(err),
		)
		return Result{Input: candidate, Err: err}
	}

	r := Result{Input: candidate, ID: id, Valid: id.Valid()}
	s.metrics.IncrementOutcome(r.Outcome())
	return r
}

// Generate streams tz.Generate(start, end) to emit in ascending order and
// returns how many IDs were emitted.
//
// Bounds are clamped exactly as tz.Generate clamps them. With more than one
// worker, chunks of the range are computed concurrently and emitted in order,
// so the output does not depend on the worker count. Generate stops at the
// first error returned by emit or on context cancellation.
func (s *Service) Generate(ctx context.Context, start, end uint64, emit func(tz.ID) error) (int, error) {
	if emit == nil {
		return 0, fmt.Errorf("emit func is required")
	}

	lo, hi := tz.Range(start, end)
	ctx, span := s.tracer.Start(ctx, "tz.Generate",
		trace.WithAttributes(
			attribute.Int64("tz.range.lo", int64(lo)),
			attribute.Int64("tz.range.hi", int64(hi)),
			attribute.Int("tz.workers", s.workers),
		),
	)
	defer span.End()

	if lo != start || hi != end {
		s.metrics.IncrementClamped()
		s.logger.DebugContext(ctx, "generation range adjusted",
			"start", start,
			"end", end,
			"lo", lo,
			"hi", hi,
		)
	}

	began := time.Now()
	var (
		n   int
		err error
	)
	if s.workers == 1 {
		n, err = s.generateSequential(ctx, lo, hi, emit)
	} else {
		n, err = s.generateParallel(ctx, lo, hi, emit)
	}
	elapsed := time.Since(began)

	s.metrics.AddGenerated(n)
	s.metrics.ObserveGenerateLatency(elapsed)
	span.SetAttributes(attribute.Int("tz.generated", n))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation aborted")
		s.logger.WarnContext(ctx, "generation aborted",
			"generated", n,
			"error", err,
		)
		return n, err
	}

	s.logger.InfoContext(ctx, "generation complete",
		"generated", n,
		"duration", elapsed,
	)
	return n, nil
}

func (s *Service) generateSequential(ctx context.Context, lo, hi uint64, emit func(tz.ID) error) (int, error) {
	n := 0
	for id := range tz.All(lo, hi) {
		if n%s.chunkSize == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
		if err := emit(id); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// generateParallel works in waves: up to s.workers chunks are computed
// concurrently, then emitted in order before the next wave starts. At most
// workers*chunkSize IDs are held at once.
func (s *Service) generateParallel(ctx context.Context, lo, hi uint64, emit func(tz.ID) error) (int, error) {
	width := uint64(s.chunkSize) * 10
	n := 0

	for next := lo; next <= hi; {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		chunks := make([][]tz.ID, s.workers)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)

		used := 0
		for ; used < s.workers && next <= hi; used++ {
			idx := used
			chunkLo := next
			chunkHi := min(chunkLo+width-10, hi)
			g.Go(func() error {
				ids := make([]tz.ID, 0, (chunkHi-chunkLo)/10+1)
				for id := range tz.All(chunkLo, chunkHi) {
					ids = append(ids, id)
				}
				chunks[idx] = ids
				return gctx.Err()
			})
			next = chunkHi + 10
		}

		if err := g.Wait(); err != nil {
			return n, err
		}

		for _, ids := range chunks[:used] {
			for _, id := range ids {
				if err := emit(id); err != nil {
					return n, err
				}
				n++
			}
		}
	}
	return n, nil
}
