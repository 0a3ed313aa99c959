package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripmigo/cmd/fx/account_fx"
	"tripmigo/cmd/fx/ai_fx"
	"tripmigo/cmd/fx/config_fx"
	"tripmigo/cmd/fx/controllers_fx"
	"tripmigo/cmd/fx/destination_fx"
	"tripmigo/cmd/fx/infra_fx"
	"tripmigo/cmd/fx/itinerary_fx"
	"tripmigo/cmd/fx/memcache_fx"
	"tripmigo/cmd/fx/places_fx"
	"tripmigo/cmd/fx/planning_fx"
	"tripmigo/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),

		config_fx.Module,
		infra_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		places_fx.Module,
		account_fx.Module,
		destination_fx.Module,
		itinerary_fx.Module,
		planning_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
