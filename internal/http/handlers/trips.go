package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

// POST /api/trips
func (h *Handler) CreateTrip(c *gin.Context) {
	var in models.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	trip, err := h.tripService(c).CreateTrip(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GET /api/trips
func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.tripService(c).ListTrips(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:tripId
func (h *Handler) GetTrip(c *gin.Context) {
	trip, err := h.tripService(c).GetTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/trips/:tripId
func (h *Handler) DeleteTrip(c *gin.Context) {
	if err := h.tripService(c).DeleteTrip(c.Request.Context(), c.Param("tripId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
