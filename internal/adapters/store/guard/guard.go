// Package guard decorates the store gateways with a circuit breaker,
// OpenTelemetry spans, and operation metrics.
//
// Both gateways of one backend share a single Breaker so that a failing
// database trips the circuit for every caller at once:
//
//	b := guard.NewBreaker(&cfg.Store.CircuitBreaker, "mongo", metrics, logger)
//	todos := guard.NewTodoStore(client.Todos(), b)
//	users := guard.NewUserStore(client.Users(), b)
//
// Lookups that find nothing and inserts that hit a uniqueness conflict are
// ordinary outcomes and never count against the breaker.
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

// Breaker runs store operations through a circuit breaker and records a span
// and metrics for each of them.
type Breaker struct {
	system  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBreaker creates a Breaker for the named database system (e.g. "mongo").
// If metrics is nil, metric recording is skipped.
func NewBreaker(cfg *config.CircuitBreakerConfig, system string, metrics *telemetry.Metrics, logger *slog.Logger) *Breaker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        system,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Breaker{
		system:  system,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Name returns the health check name of the guarded store.
func (b *Breaker) Name() string {
	return b.system + "-breaker"
}

// HealthCheck reports store availability from the breaker state without
// touching the database.
func (b *Breaker) HealthCheck(_ context.Context) error {
	state := b.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", b.system)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", b.system)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", b.system, state)
	}
}

// execute runs fn under the breaker inside a client span. A rejected call
// returns an error matching both domain.ErrUnavailable and the gobreaker
// sentinel.
func (b *Breaker) execute(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := b.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := b.startSpan(ctx, operation)
		defer span.End()

		opErr := fn(spanCtx)
		if !isSuccessful(opErr) {
			span.RecordError(opErr)
			span.SetStatus(codes.Error, opErr.Error())
		}
		return struct{}{}, opErr
	})

	rejected := errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
	b.recordMetrics(ctx, operation, start, err, rejected)

	if rejected {
		b.logger.WarnContext(ctx, "store call rejected",
			slog.String("db_system", b.system),
			slog.String("operation", operation),
		)
		return fmt.Errorf("%s %s: %w: %w", b.system, operation, domain.ErrUnavailable, err)
	}
	return err
}

// call adapts a value-returning store method to Breaker.execute.
func call[T any](ctx context.Context, b *Breaker, operation string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := b.execute(ctx, operation, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func (b *Breaker) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("store")

	return tracer.Start(ctx, b.system+" "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(b.system),
			telemetry.AttrDBOperation.String(operation),
		),
	)
}

// recordMetrics is called outside the breaker so rejections are counted.
func (b *Breaker) recordMetrics(ctx context.Context, operation string, start time.Time, err error, rejected bool) {
	if b.metrics == nil {
		return
	}

	result := "success"
	switch {
	case rejected:
		result = "circuit_open"
	case !isSuccessful(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(b.system),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	b.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	b.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// isSuccessful reports whether err leaves the backend healthy.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

// toUint32 clamps v into the uint32 range. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
