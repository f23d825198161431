package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mylegacyregistry/adapters/memcache"
	"mylegacyregistry/adapters/myredis"
	"mylegacyregistry/adapters/registry"
	"mylegacyregistry/adapters/seedfile"
	"mylegacyregistry/domain"
	"mylegacyregistry/handlers"
	"mylegacyregistry/interfaces"
	"mylegacyregistry/metrics"
	"mylegacyregistry/service"
	"mylegacyregistry/tracing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyLegacyRegistry service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"root_path", config.RootPath,
		"registry_backend", config.Registry.Backend,
		"refresh_interval", config.Registry.RefreshInterval,
		"seed_file", config.Registry.SeedFile,
		"tracing_exporter", config.Tracing.Exporter,
	)

	// Instance store the new registry lives in
	var cache interfaces.Cache[domain.Instance]
	switch config.Registry.Backend {
	case BackendRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		marshal := func(i domain.Instance) ([]byte, error) { return json.Marshal(i) }
		unmarshal := func(b []byte) (domain.Instance, error) {
			var i domain.Instance
			err := json.Unmarshal(b, &i)
			return i, err
		}
		cache = myredis.NewCache[domain.Instance](redisClient, config.Registry.KeyPrefix, marshal, unmarshal)
	default:
		cache = memcache.NewCache[domain.Instance](memcache.DefaultCleanupInterval)
	}

	// Seed file
	var seedWatcher *seedfile.Watcher
	if config.Registry.SeedFile != "" {
		loader := seedfile.NewLoader(config.Registry.SeedFile, cache, logger)
		if err := loader.Apply(context.Background()); err != nil {
			level.Error(logger).Log("msg", "Failed to load seed file", "err", err)
			os.Exit(1)
		}

		seedWatcher, err = seedfile.NewWatcher(loader.Path(), seedfile.DefaultDebounce, loader.Apply, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to watch seed file", "err", err)
			os.Exit(1)
		}
		seedWatcher.Start()
	}

	m := metrics.New()

	tracer, err := tracing.NewProvider(config.Tracing)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create tracing provider", "err", err)
		os.Exit(1)
	}

	// Legacy view over the registry
	var view interfaces.RegistryView
	{
		view = service.NewRegistryView(
			registry.NewCacheRegistry(cache),
			service.NewTimeProvider(time.Now),
			m,
			config.Registry.RefreshInterval,
			logger,
		)
	}

	// Create HTTPServer
	var httpServer handlers.ServerInterface
	{
		httpServer = handlers.NewHTTPServer(view, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		negotiator := service.NewNegotiator(domain.MediaTypeJSON, domain.MediaTypeXML)

		e = echo.New()
		e.HideBanner = true
		e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
		e.Use(middleware.Recover())
		service.RegisterErrorHandler(e, negotiator, logger)

		e.GET("/healthz", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		e.GET("/metrics", echo.WrapHandler(m.Handler()))

		handlers.RegisterHandlersWithBaseURL(e, httpServer, service.NewRouteMatcher(config.RootPath), negotiator, config.RootPath,
			tracer.Middleware(), m.Middleware())
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if seedWatcher != nil {
		if err := seedWatcher.Stop(); err != nil {
			level.Error(logger).Log("msg", "Error stopping seed file watcher", "err", err)
		}
	}
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error flushing traces", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
