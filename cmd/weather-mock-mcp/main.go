package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/i474232898/weather-mock-mcp/internal/api/http"
	"github.com/i474232898/weather-mock-mcp/internal/config"
	"github.com/i474232898/weather-mock-mcp/internal/mcpserver"
	"github.com/i474232898/weather-mock-mcp/internal/observability"
	"github.com/i474232898/weather-mock-mcp/internal/scheduler"
	"github.com/i474232898/weather-mock-mcp/internal/tools"
	"github.com/i474232898/weather-mock-mcp/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.SetLevel(cfg.Level())

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// Core service: geo catalog + synthesizer, instrumented.
	service := weather.NewService(weather.NewSynthesizer(), metrics)
	toolset := tools.New(service)

	// Self-check drives readiness.
	sched := scheduler.New(cfg.SelfCheckInterval, service.SelfCheck, metrics.SelfCheckCompleted)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp(cfg.CORSAllowOrigins)
	httpapi.RegisterRoutes(app, toolset, httpapi.Options{
		MCPPath: cfg.MCPPath,
		MCP:     mcpserver.NewHandler(mcpserver.New(toolset)),
		Metrics: promhttp.Handler(),
		Ready:   sched,
	})

	go func() {
		log.Infof("listening on %s (mcp endpoint %s)", cfg.Addr(), cfg.MCPPath)
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
	log.Info("shutdown complete")
}
