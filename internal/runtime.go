package internal

import (
	"fmt"
	"log/slog"

	"github.com/starford/osirris/internal/audit"
	"github.com/starford/osirris/internal/metrics"
	"github.com/starford/osirris/internal/resolve"
	"github.com/starford/osirris/internal/source"
	"github.com/starford/osirris/internal/storage"
)

// runtime holds the components shared by every command.
type runtime struct {
	cfg      *Config
	logger   *slog.Logger
	store    *storage.FS
	audit    *audit.Log
	metrics  *metrics.Metrics
	resolver *resolve.Resolver
}

// setup initializes logging, storage, the audit log and the resolver.
func setup(app *application) (*runtime, error) {
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(app.logOutput, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("env", cfg.App.Env),
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("content_path", cfg.Content.Path),
		slog.Bool("cms_enabled", cfg.CMS.Enabled),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Content.Path)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	auditLog, err := audit.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("init audit log: %w", err)
	}

	var sources []source.Source
	if cfg.CMS.Enabled {
		sources = append(sources, source.NewRemote(cfg.CMS.Endpoint, cfg.CMS.Token,
			source.WithTimeout(cfg.CMS.Timeout),
			source.WithRateLimit(cfg.CMS.RateLimit, int(cfg.CMS.RateLimit)+1)))
	}
	sources = append(sources, source.NewLocal(store, logger))

	m := metrics.New()
	resolver := resolve.New(
		resolve.WithSources(sources...),
		resolve.WithLogger(logger),
		resolve.WithRecorder(auditLog),
		resolve.WithMetrics(m),
	)

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		audit:    auditLog,
		metrics:  m,
		resolver: resolver,
	}, nil
}

// Close releases the audit database.
func (rt *runtime) Close() {
	if err := rt.audit.Close(); err != nil {
		rt.logger.Warn("audit close failed", slog.String("error", err.Error()))
	}
}
