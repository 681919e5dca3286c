// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/osirris/internal/api"
	"github.com/starford/osirris/internal/sse"
	"github.com/starford/osirris/internal/watch"
)

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	rt, err := setup(newApplication(opts))
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg, logger := rt.cfg, rt.logger

	// SSE broker.
	broker := sse.NewBroker(sse.WithThrottle(2 * time.Second))
	defer broker.Close()

	cmsEndpoint := ""
	if cfg.CMS.Enabled {
		cmsEndpoint = cfg.CMS.Endpoint
	}
	cmsGate, err := api.NewCMSGate(cfg.App.IsProduction(), cmsEndpoint, cfg.CMS.Token)
	if err != nil {
		return fmt.Errorf("init cms gate: %w", err)
	}

	apiRouter := api.NewRouter(api.RouterConfig{
		Resolver:    rt.resolver,
		Status:      rt.audit,
		CMS:         cmsGate,
		Events:      broker,
		AuthEnabled: cfg.Auth.AuthEnabled(),
		Token:       cfg.Auth.Token,
	})

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := rt.audit.LastServed(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", rt.metrics.Handler())
	r.Get("/uploads/{filename}", api.NewUploadHandler(rt.store.Root()).ServeFile)

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	// SIGINT and SIGTERM cancel every goroutine below.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(sigCtx)

	// Start file watcher with SSE callback.
	if cfg.Watch.Enabled {
		g.Go(func() error {
			err := watch.Watch(gCtx, rt.store.Root(), logger, func(ev watch.Event) {
				broker.PublishChange(sse.Change{Kind: ev.Kind, Path: ev.Path, Collection: ev.Collection})
			})
			if err != nil {
				logger.Warn("watcher disabled", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Shut down once a signal arrives or another goroutine fails.
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down server...", slog.String("cause", context.Cause(gCtx).Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
