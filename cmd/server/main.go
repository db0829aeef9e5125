// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store"

	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/auth"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/metrics"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	defaultProfile        = "local"
	storeConnectTimeout   = 30 * time.Second
	serverShutdownTimeout = 15 * time.Second
	storeShutdownTimeout  = 5 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("configuration loaded",
		slog.String("profile", profile),
		slog.String("store", cfg.Store.Driver),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Persistence: opened before the graph so startup fails fast.
	connectCtx, connectCancel := context.WithTimeout(ctx, storeConnectTimeout)
	backend, err := store.Open(connectCtx, &cfg.Store, otel.metrics, logger)
	connectCancel()
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening store: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, backend)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = backend.Close(ctx)
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range backend.Checkers {
		registry.Register(checker)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		shutdownDependencies(injector, cfg, backend, otel, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	shutdownDependencies(injector, cfg, backend, otel, logger)

	logger.Info("shutdown complete")
	return nil
}

// shutdownDependencies stops background work, closes the store, and flushes
// telemetry, in that order.
func shutdownDependencies(injector do.Injector, cfg *config.Config, backend *store.Backend, otel *otelProviders, logger *slog.Logger) {
	if cfg.RateLimit.Enabled {
		do.MustInvoke[*middleware.RateLimiter](injector).Stop()
	}

	storeCtx, storeCancel := context.WithTimeout(context.Background(), storeShutdownTimeout)
	defer storeCancel()

	if err := backend.Close(storeCtx); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	instruments, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: instruments,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DomainMetrics, error) {
		reg := do.MustInvoke[*prometheus.Registry](i)
		return metrics.NewCollector(reg), nil
	})

	do.Provide(injector, func(_ do.Injector) (*auth.Tokens, error) {
		return auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		backend := do.MustInvoke[*store.Backend](i)
		dm := do.MustInvoke[ports.DomainMetrics](i)
		return app.NewTodoService(backend.Todos, dm, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		backend := do.MustInvoke[*store.Backend](i)
		tokens := do.MustInvoke[*auth.Tokens](i)
		dm := do.MustInvoke[ports.DomainMetrics](i)
		return app.NewUserService(backend.Users, auth.NewHasher(cfg.Auth.BcryptCost), tokens, dm, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*middleware.RateLimiter, error) {
		dm := do.MustInvoke[ports.DomainMetrics](i)
		return middleware.NewRateLimiter(cfg.RateLimit, dm), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		todos := do.MustInvoke[ports.TodoService](i)
		users := do.MustInvoke[ports.UserService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		reg := do.MustInvoke[*prometheus.Registry](i)

		return adapthttp.Handlers{
			Todo:    handlers.NewTodoHandler(todos, cfg.Pagination),
			Auth:    handlers.NewAuthHandler(users),
			Admin:   handlers.NewAdminHandler(users),
			Health:  handlers.NewHealthHandler(registry),
			Metrics: metrics.Handler(reg),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Guards, error) {
		tokens := do.MustInvoke[*auth.Tokens](i)
		dm := do.MustInvoke[ports.DomainMetrics](i)

		guards := adapthttp.Guards{Authenticate: middleware.Authenticate(tokens, dm)}
		if cfg.RateLimit.Enabled {
			guards.RateLimit = do.MustInvoke[*middleware.RateLimiter](i).Middleware()
		}
		return guards, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		g := do.MustInvoke[adapthttp.Guards](i)
		otelMetrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, g,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(otelMetrics),
			middleware.Logging(logger),
			middleware.CORS(cfg.Server.CORSAllowedOrigins),
			middleware.SecurityHeaders(),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
