package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

// TripStore is the persistence surface the trip and manifest services need.
type TripStore interface {
	Create(ctx context.Context, t models.Trip) error
	ListWithOccupancy(ctx context.Context) ([]models.TripSummary, error)
	GetByID(ctx context.Context, id string) (models.Trip, error)
	Delete(ctx context.Context, id string) error
}

// PassengerStore is the persistence surface for passengers.
type PassengerStore interface {
	Create(ctx context.Context, p models.Passenger) error
	ListByTrip(ctx context.Context, tripID string) ([]models.Passenger, error)
	GetByID(ctx context.Context, id string) (models.Passenger, error)
	UpdatePayment(ctx context.Context, id string, hasPaid bool) error
	Delete(ctx context.Context, id string) error
}

// UserStore backs the access gateway.
type UserStore interface {
	Create(ctx context.Context, u models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

func newID(gen func() string) string {
	if gen != nil {
		return gen()
	}
	return uuid.NewString()
}
