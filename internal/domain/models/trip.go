package models

import "github.com/mark1um/bus-seat-manage-api/internal/domain"

// Trip is a scheduled bus departure.
type Trip struct {
	ID            string         `json:"id"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departureDate"`
	DepartureTime string         `json:"departureTime"`
	Price         float64        `json:"price"`
	BusType       domain.BusType `json:"busType"`
}

// TripSummary is a listing row: the trip plus its derived occupancy.
type TripSummary struct {
	Trip
	SeatsInfo domain.SeatsInfo `json:"seatsInfo"`
}

// TripDetail is a single trip with its passengers loaded.
type TripDetail struct {
	Trip
	Passengers []Passenger `json:"passengers"`
}

// TripInput is the payload accepted when creating a trip.
type TripInput struct {
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departureDate"`
	DepartureTime string         `json:"departureTime"`
	Price         float64        `json:"price"`
	BusType       domain.BusType `json:"busType"`
}
