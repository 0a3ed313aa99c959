package controllers_fx

import (
	"go.uber.org/fx"

	"tripmigo/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewHotelController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewPlanningController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewSystemController),
)
