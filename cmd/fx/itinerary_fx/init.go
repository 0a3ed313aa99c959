package itinerary_fx

import (
	"go.uber.org/fx"

	"tripmigo/internal/services"
)

var Module = fx.Provide(
	services.NewItineraryService,
	services.NewHotelService,
	services.NewReviewService,
	services.NewSystemService,
)
