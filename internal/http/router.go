package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	h "github.com/mark1um/bus-seat-manage-api/internal/http/handlers"
	"github.com/mark1um/bus-seat-manage-api/internal/http/middleware"
	"github.com/mark1um/bus-seat-manage-api/internal/services"
	"github.com/mark1um/bus-seat-manage-api/internal/utils"
)

// Options carries the router's environment-dependent switches.
type Options struct {
	// AuthRequired puts every trip and passenger route behind the bearer
	// middleware.
	AuthRequired   bool
	AllowedOrigins []string
	// Idempotency enables Idempotency-Key replay on trip and passenger
	// creation. Nil disables it.
	Idempotency middleware.IdempotencyStore
}

func NewRouter(handler *h.Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(opts.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	requireAuth := middleware.AuthRequired(services.AuthService{Secret: handler.JWTSecret})

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/db-check", handler.DBCheck)
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		api.GET("/routes", handler.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.GET("/validate", requireAuth, handler.Validate)

		// Trips & passengers
		trips := api.Group("/trips")
		if opts.AuthRequired {
			trips.Use(requireAuth)
		}
		idem := middleware.Idempotency(opts.Idempotency)

		trips.GET("", handler.ListTrips)
		trips.POST("", idem, handler.CreateTrip)
		trips.GET("/:tripId", handler.GetTrip)
		trips.DELETE("/:tripId", handler.DeleteTrip)

		trips.GET("/:tripId/passengers", handler.ListPassengers)
		trips.POST("/:tripId/passengers", idem, handler.AddPassenger)
		trips.GET("/:tripId/passengers/pdf", handler.PassengerManifestPDF)
		trips.PUT("/:tripId/passengers/:passengerId/payment", handler.UpdatePayment)
		trips.DELETE("/:tripId/passengers/:passengerId", handler.DeletePassenger)
	}

	handler.SetRouter(r)
	return r
}
