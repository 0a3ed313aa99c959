package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmigo/internal/config"
	"tripmigo/internal/repositories"
	"tripmigo/internal/services"
	mem "tripmigo/pkg/memcache"
	"tripmigo/pkg/utils"
)

var Module = fx.Provide(
	provideTokenSigner, provideUserRepo, provideSessionRepo, provideAuthService)

func provideTokenSigner(cfg *config.Config) *utils.TokenSigner {
	return utils.NewTokenSigner(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideUserRepo(store mem.Store) repositories.UserRepository {
	return repositories.NewUserRepository(store)
}

func provideSessionRepo(store mem.Store) repositories.SessionRepository {
	return repositories.NewSessionRepository(store)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	signer *utils.TokenSigner,
	logger *zap.Logger,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, sessionRepo, signer, logger)
}
