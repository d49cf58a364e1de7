package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

// paymentRequest keeps hasPaid untyped so a non-boolean reaches the service
// and is rejected there with a field error.
type paymentRequest struct {
	HasPaid any `json:"hasPaid"`
}

// POST /api/trips/:tripId/passengers
func (h *Handler) AddPassenger(c *gin.Context) {
	var in models.PassengerInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := h.passengerService(c).AddPassenger(c.Request.Context(), c.Param("tripId"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /api/trips/:tripId/passengers
func (h *Handler) ListPassengers(c *gin.Context) {
	list, err := h.passengerService(c).ListPassengers(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/trips/:tripId/passengers/:passengerId/payment
func (h *Handler) UpdatePayment(c *gin.Context) {
	var req paymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	p, err := h.passengerService(c).SetPaymentStatus(c.Request.Context(), c.Param("tripId"), c.Param("passengerId"), req.HasPaid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/trips/:tripId/passengers/:passengerId
func (h *Handler) DeletePassenger(c *gin.Context) {
	if err := h.passengerService(c).RemovePassenger(c.Request.Context(), c.Param("tripId"), c.Param("passengerId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/trips/:tripId/passengers/pdf
//
// The document is rendered in full before any header is written, so a
// render failure still gets a JSON error.
func (h *Handler) PassengerManifestPDF(c *gin.Context) {
	pdf, filename, err := h.manifestService(c).Generate(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
