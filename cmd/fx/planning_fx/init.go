package planning_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmigo/internal/config"
	"tripmigo/internal/repositories"
	"tripmigo/internal/services"
	mem "tripmigo/pkg/memcache"
)

var Module = fx.Provide(
	providePlanningRepo, providePlanningService)

func providePlanningRepo(store mem.Store, cfg *config.Config) repositories.PlanningRepository {
	return repositories.NewPlanningRepository(store, cfg.Store.PlanningTTL)
}

func providePlanningService(
	planningRepo repositories.PlanningRepository,
	itineraryService services.ItineraryServiceInterface,
	logger *zap.Logger,
) services.PlanningServiceInterface {
	return services.NewPlanningService(planningRepo, itineraryService, logger)
}
