package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"iltz/internal/platform/config"
	tzmetrics "iltz/internal/tz/metrics"
	"iltz/internal/tz/service"
	"iltz/pkg/domain/tz"
)

// Service is the slice of the application service the commands use.
type Service interface {
	CheckAll(ctx context.Context, candidates []string) []service.Result
	Generate(ctx context.Context, start, end uint64, emit func(tz.ID) error) (int, error)
}

// ServiceFactory builds the Service once configuration is resolved.
type ServiceFactory func(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (Service, error)

func newService(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (Service, error) {
	return service.New(
		service.WithLogger(logger),
		service.WithMetrics(tzmetrics.New(reg)),
		service.WithWorkers(cfg.Generate.Workers),
		service.WithChunkSize(cfg.Generate.ChunkSize),
	)
}
