package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/passnet/internal/adapters/http/api"
	"github.com/okian/passnet/internal/adapters/http/site"
	"github.com/okian/passnet/internal/adapters/http/swagger"
	"github.com/okian/passnet/internal/adapters/render"
	"github.com/okian/passnet/internal/adapters/statsbomb"
	service "github.com/okian/passnet/internal/app"
	"github.com/okian/passnet/internal/config"
	"github.com/okian/passnet/internal/domain/colours"
	"github.com/okian/passnet/internal/domain/network"
	"github.com/okian/passnet/pkg/logger"
	"github.com/okian/passnet/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 60 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() { _ = logger.Sync() }()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.InitWith(os.Stdout, cfg.LogFormat); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(cfg, loggerInstance)
	if err != nil {
		loggerInstance.Error(ctx, "invalid service configuration", logger.Error(err))
		return
	}
	if err := svc.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx, metrics.RefreshInterval())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newService wires the event source, palette, encoder and renderer from cfg.
func newService(cfg *config.Config, log logger.Logger) (*service.Service, error) {
	palette := colours.NewPalette(
		colours.WithOverrides(cfg.TeamColours),
		colours.WithDefault(cfg.DefaultTeamColour),
	)
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	source := statsbomb.New(
		statsbomb.WithBaseURL(cfg.DataURL),
		statsbomb.WithDir(cfg.DataDir),
		statsbomb.WithTimeout(time.Duration(cfg.FetchTimeoutMS)*time.Millisecond),
		statsbomb.WithLogger(log.Named("statsbomb")),
	)
	log.Info(context.Background(), "event source configured", logger.String("source", source.String()))

	return service.New(
		service.WithLogger(log.Named("service")),
		service.WithSource(source),
		service.WithPalette(palette),
		service.WithEncoder(network.NewEncoder(network.WithMinTransparency(cfg.MinTransparency))),
		service.WithRenderer(render.New(
			render.WithPitchColour(cfg.PitchColor),
			render.WithLineColour(cfg.LineColor),
			render.WithScale(cfg.RenderScale),
		)),
		service.WithSeason(cfg.CompetitionID, cfg.SeasonID),
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithQueueSize(cfg.QueueSize),
	), nil
}

// newHandler registers every route and wraps the mux with request ids.
func newHandler(ctx context.Context, svc *service.Service) http.Handler {
	mux := http.NewServeMux()

	swagger.Register(ctx, mux)
	api.NewServer(svc, svc).Register(ctx, mux)
	// The page owns "/" so it is registered last.
	site.Register(ctx, mux, svc)

	return api.RequestIDMiddleware(mux)
}

// startSystemMetricsUpdater periodically refreshes system metrics.
func startSystemMetricsUpdater(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
