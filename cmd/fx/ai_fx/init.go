package ai_fx

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/config"
	"tripmigo/pkg/utils"
)

var Module = fx.Provide(
	provideGateway, provideMetrics, providePipeline)

// provideGateway never fails on a missing key; the gateway then reports
// itself unhealthy and every use case serves its fallback.
func provideGateway(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*aipipeline.Gateway, error) {
	model, err := utils.NewTextModel(cfg.AI.Provider, cfg.AI.APIKey(), cfg.AI.Model)
	if err != nil {
		return nil, err
	}

	if model == nil {
		logger.Warn("AI API key not configured, serving fallback responses",
			zap.String("provider", cfg.AI.Provider))
	} else if closer, ok := model.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	return aipipeline.NewGateway(model, logger.Named("gateway"),
		aipipeline.WithBaseDelay(cfg.AI.RetryBaseDelay),
		aipipeline.WithCallTimeout(cfg.AI.CallTimeout),
	), nil
}

func provideMetrics(reg *prometheus.Registry) *aipipeline.Metrics {
	return aipipeline.NewMetrics(reg)
}

func providePipeline(gateway *aipipeline.Gateway, cfg *config.Config, logger *zap.Logger, metrics *aipipeline.Metrics) *aipipeline.Pipeline {
	return aipipeline.NewPipeline(gateway, aipipeline.NewExtractor(cfg.AI.Extractor), logger.Named("pipeline"), metrics)
}
