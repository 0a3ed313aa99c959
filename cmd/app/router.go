package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tripmigo/internal/api/controllers"
	"tripmigo/internal/config"
	"tripmigo/pkg/middleware"
	"tripmigo/pkg/utils"
)

type Controllers struct {
	Itinerary   *controllers.ItineraryController
	Hotel       *controllers.HotelController
	Places      *controllers.PlacesController
	Destination *controllers.DestinationController
	Planning    *controllers.PlanningController
	Auth        *controllers.AuthController
	System      *controllers.SystemController
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	signer *utils.TokenSigner,
	itineraryController *controllers.ItineraryController,
	hotelController *controllers.HotelController,
	placesController *controllers.PlacesController,
	destinationController *controllers.DestinationController,
	planningController *controllers.PlanningController,
	authController *controllers.AuthController,
	systemController *controllers.SystemController,
) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	RegisterRoutes(r, middleware.JWTAuthMiddleware(signer), Controllers{
		Itinerary:   itineraryController,
		Hotel:       hotelController,
		Places:      placesController,
		Destination: destinationController,
		Planning:    planningController,
		Auth:        authController,
		System:      systemController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc, ctl Controllers) {
	r.GET("/health", ctl.System.Health)

	configGroup := r.Group("/config")
	configGroup.GET("/maps-key", ctl.System.MapsKey)
	configGroup.GET("/app", ctl.System.AppConfig)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", ctl.Itinerary.GenerateItinerary)
	itineraryGroup.POST("/optimize", ctl.Itinerary.OptimizeItinerary)
	itineraryGroup.POST("/reviews/summarize", ctl.Itinerary.SummarizeReviews)
	itineraryGroup.GET("/templates", ctl.Itinerary.GetTemplates)

	hotelsGroup := r.Group("/hotels")
	hotelsGroup.GET("/recommendations", ctl.Hotel.GetRecommendations)

	// static segments are registered before the :placeId wildcard
	placesGroup := r.Group("/places")
	placesGroup.GET("/search", ctl.Places.SearchPlaces)
	placesGroup.GET("/directions", ctl.Places.GetDirections)
	placesGroup.GET("/geocode", ctl.Places.Geocode)
	placesGroup.GET("/:placeId", ctl.Places.GetPlaceDetails)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", ctl.Destination.ListDestinations)
	destinationsGroup.GET("/popular", ctl.Destination.PopularDestinations)
	destinationsGroup.GET("/search/nearby", ctl.Destination.NearbyAttractions)
	destinationsGroup.GET("/trips/popular", ctl.Destination.PopularTrips)
	destinationsGroup.GET("/:id", ctl.Destination.GetDestinationDetails)

	planningGroup := r.Group("/planning")
	planningGroup.POST("/session/start", ctl.Planning.StartSession)
	planningGroup.GET("/session/:id", ctl.Planning.GetSession)
	planningGroup.PUT("/session/:id/step/:step", ctl.Planning.UpdateStep)
	planningGroup.POST("/session/:id/generate", ctl.Planning.GenerateItinerary)
	planningGroup.GET("/destinations/suggestions", ctl.Planning.DestinationSuggestions)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", ctl.Auth.Register)
	authGroup.POST("/login", ctl.Auth.Login)
	authGroup.POST("/logout", ctl.Auth.Logout)
	authGroup.GET("/verify-token", ctl.Auth.VerifyToken)
	authGroup.GET("/profile/:id", requireAuth, ctl.Auth.GetProfile)
	authGroup.PUT("/profile/:id", requireAuth, ctl.Auth.UpdateProfile)
}
