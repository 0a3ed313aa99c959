package destination_fx

import (
	"go.uber.org/fx"

	"tripmigo/internal/repositories"
	"tripmigo/internal/services"
)

var Module = fx.Provide(
	repositories.NewDestinationRepository,
	services.NewDestinationService,
)
