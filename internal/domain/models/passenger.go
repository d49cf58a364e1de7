package models

// Passenger is a rider attached to exactly one trip.
type Passenger struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CPF        string `json:"cpf"`
	SeatNumber string `json:"seatNumber"`
	HasPaid    bool   `json:"hasPaid"`
	TripID     string `json:"tripId"`
}

// PassengerInput is the payload accepted when registering a passenger.
// A missing hasPaid means unpaid.
type PassengerInput struct {
	Name       string `json:"name"`
	CPF        string `json:"cpf"`
	SeatNumber string `json:"seatNumber"`
	HasPaid    *bool  `json:"hasPaid"`
}
