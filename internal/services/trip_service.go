package services

import (
	"context"
	"fmt"

	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
	"github.com/mark1um/bus-seat-manage-api/internal/metrics"
	"github.com/mark1um/bus-seat-manage-api/internal/utils"
)

// TripService creates and reads trips and derives their seat occupancy.
type TripService struct {
	Trips      TripStore
	Passengers PassengerStore
	RequestID  string
	NewID      func() string
}

// CreateTrip stores a new trip as given. busType is not checked here; the
// ENUM column rejects unknown classes.
func (s TripService) CreateTrip(ctx context.Context, in models.TripInput) (models.Trip, error) {
	t := models.Trip{
		ID:            newID(s.NewID),
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate,
		DepartureTime: in.DepartureTime,
		Price:         in.Price,
		BusType:       in.BusType,
	}
	if err := s.Trips.Create(ctx, t); err != nil {
		return models.Trip{}, err
	}
	metrics.TripsCreated.Inc()
	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%s bus_type=%s", t.ID, t.BusType))
	return t, nil
}

// ListTrips returns every trip newest departure first with seatsInfo filled.
func (s TripService) ListTrips(ctx context.Context) ([]models.TripSummary, error) {
	return s.Trips.ListWithOccupancy(ctx)
}

// GetTrip returns the trip with its passengers, or a NotFoundError.
func (s TripService) GetTrip(ctx context.Context, tripID string) (models.TripDetail, error) {
	t, err := s.Trips.GetByID(ctx, tripID)
	if err != nil {
		return models.TripDetail{}, err
	}
	passengers, err := s.Passengers.ListByTrip(ctx, tripID)
	if err != nil {
		return models.TripDetail{}, err
	}
	return models.TripDetail{Trip: t, Passengers: passengers}, nil
}

// DeleteTrip removes the trip together with its passengers.
func (s TripService) DeleteTrip(ctx context.Context, tripID string) error {
	if err := s.Trips.Delete(ctx, tripID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "delete", "trip_id="+tripID)
	return nil
}
