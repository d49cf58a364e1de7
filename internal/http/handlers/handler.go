package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mark1um/bus-seat-manage-api/internal/db"
	"github.com/mark1um/bus-seat-manage-api/internal/http/middleware"
	"github.com/mark1um/bus-seat-manage-api/internal/services"
)

// Handler holds the dependencies shared by every route. Services are built
// per request so they carry its request id.
type Handler struct {
	DB         db.QueryRower
	Trips      services.TripStore
	Passengers services.PassengerStore
	Users      services.UserStore
	JWTSecret  []byte
	TokenTTL   time.Duration

	routes routeTable
}

func (h *Handler) tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Trips:      h.Trips,
		Passengers: h.Passengers,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) passengerService(c *gin.Context) services.PassengerService {
	return services.PassengerService{
		Passengers: h.Passengers,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) manifestService(c *gin.Context) services.ManifestService {
	return services.ManifestService{
		Trips:      h.Trips,
		Passengers: h.Passengers,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     h.Users,
		Secret:    h.JWTSecret,
		TokenTTL:  h.TokenTTL,
		RequestID: middleware.GetRequestID(c),
	}
}
