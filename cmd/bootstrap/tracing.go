package bootstrap

import (
	"context"
	"log/slog"

	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(SetupTracing),
)

// SetupTracing installs a global OTLP/gRPC exporter when an address is
// configured. Without one the no-op provider stays in place.
func SetupTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	if cfg.Tracing.OTLPGRPCAddr == "" {
		logger.Info("Tracing disabled, no OTLP address configured")
		return nil
	}

	conn, err := grpc.NewClient(cfg.Tracing.OTLPGRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return errs.Wrap(err, "create grpc connection to collector")
	}

	exp, err := otlptracegrpc.New(context.Background(), otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "create otlp trace exporter")
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	logger.Info("Tracing enabled", "otlp_addr", cfg.Tracing.OTLPGRPCAddr, "service", cfg.Tracing.ServiceName)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("Failed to flush traces", "error", err)
			}
			return conn.Close()
		},
	})
	return nil
}
