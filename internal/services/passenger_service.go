package services

import (
	"context"
	"fmt"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
	"github.com/mark1um/bus-seat-manage-api/internal/metrics"
	"github.com/mark1um/bus-seat-manage-api/internal/utils"
)

// PassengerService manages the roster of a trip. Every mutation of an
// existing passenger goes through checkOwnership first.
type PassengerService struct {
	Passengers PassengerStore
	RequestID  string
	NewID      func() string
}

type ownership int

const (
	ownershipOK ownership = iota
	ownershipNotFound
	ownershipMismatch
)

// checkOwnership loads passengerID and tags whether it belongs to tripID.
// The error is only set for storage failures.
func (s PassengerService) checkOwnership(ctx context.Context, tripID, passengerID string) (models.Passenger, ownership, error) {
	p, err := s.Passengers.GetByID(ctx, passengerID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Passenger{}, ownershipNotFound, nil
		}
		return models.Passenger{}, ownershipNotFound, err
	}
	if p.TripID != tripID {
		return p, ownershipMismatch, nil
	}
	return p, ownershipOK, nil
}

func (s PassengerService) requireOwned(ctx context.Context, tripID, passengerID string) (models.Passenger, error) {
	p, res, err := s.checkOwnership(ctx, tripID, passengerID)
	if err != nil {
		return models.Passenger{}, err
	}
	switch res {
	case ownershipNotFound:
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
	case ownershipMismatch:
		return models.Passenger{}, domain.ValidationError{
			Field: "tripId",
			Msg:   fmt.Sprintf("passenger %s does not belong to trip %s", passengerID, tripID),
		}
	}
	return p, nil
}

// AddPassenger registers a passenger on tripID. Duplicate cpf and unknown
// trips are rejected by the schema.
func (s PassengerService) AddPassenger(ctx context.Context, tripID string, in models.PassengerInput) (models.Passenger, error) {
	p := models.Passenger{
		ID:         newID(s.NewID),
		Name:       in.Name,
		CPF:        in.CPF,
		SeatNumber: in.SeatNumber,
		TripID:     tripID,
	}
	if in.HasPaid != nil {
		p.HasPaid = *in.HasPaid
	}
	if err := s.Passengers.Create(ctx, p); err != nil {
		return models.Passenger{}, err
	}
	metrics.PassengersCreated.Inc()
	utils.LogEvent(s.RequestID, "passenger", "create", fmt.Sprintf("trip_id=%s passenger_id=%s", tripID, p.ID))
	return p, nil
}

func (s PassengerService) ListPassengers(ctx context.Context, tripID string) ([]models.Passenger, error) {
	return s.Passengers.ListByTrip(ctx, tripID)
}

// SetPaymentStatus sets the paid flag. hasPaid is the decoded JSON value and
// must be a boolean.
func (s PassengerService) SetPaymentStatus(ctx context.Context, tripID, passengerID string, hasPaid any) (models.Passenger, error) {
	paid, ok := hasPaid.(bool)
	if !ok {
		return models.Passenger{}, domain.ValidationError{Field: "hasPaid", Msg: "invalid value, expected boolean"}
	}

	p, err := s.requireOwned(ctx, tripID, passengerID)
	if err != nil {
		return models.Passenger{}, err
	}
	if err := s.Passengers.UpdatePayment(ctx, passengerID, paid); err != nil {
		return models.Passenger{}, err
	}
	p.HasPaid = paid

	metrics.PaymentUpdates.WithLabelValues(metrics.PaymentLabel(paid)).Inc()
	utils.LogEvent(s.RequestID, "passenger", "payment", fmt.Sprintf("passenger_id=%s has_paid=%t", passengerID, paid))
	return p, nil
}

// RemovePassenger deletes a passenger that belongs to tripID.
func (s PassengerService) RemovePassenger(ctx context.Context, tripID, passengerID string) error {
	if _, err := s.requireOwned(ctx, tripID, passengerID); err != nil {
		return err
	}
	if err := s.Passengers.Delete(ctx, passengerID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "passenger", "delete", fmt.Sprintf("trip_id=%s passenger_id=%s", tripID, passengerID))
	return nil
}
