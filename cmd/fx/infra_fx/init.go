package infra_fx

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmigo/internal/config"
	"tripmigo/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideLogger, provideRegistry, provideTracerProvider),
	// nothing consumes the provider directly; spans use the global one
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := infra.NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

func provideRegistry() *prometheus.Registry {
	return infra.NewRegistry()
}

func provideTracerProvider(lc fx.Lifecycle, cfg *config.Config) (*sdktrace.TracerProvider, error) {
	tp, err := infra.InitTracing(cfg.Tracing.Enabled)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.ShutdownTracing(ctx, tp)
		},
	})
	return tp, nil
}
