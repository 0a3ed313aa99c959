package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmigo/internal/config"
	"tripmigo/internal/infra"
	mem "tripmigo/pkg/memcache"
)

var Module = fx.Provide(provideStore)

func provideStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (mem.Store, error) {
	if cfg.Store.Driver != "redis" {
		logger.Info("using in-memory store")
		return mem.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := infra.InitRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseRedis(client, logger)
			return nil
		},
	})

	return mem.NewRedisStore(client, cfg.Redis.KeyPrefix), nil
}
