package domain

// BusType is the size class of the bus serving a trip.
type BusType string

const (
	BusSmall  BusType = "small"
	BusMedium BusType = "medium"
	BusLarge  BusType = "large"
)

// busCapacities is the seat table per bus class. Keep in sync with the
// ENUM on trips.bus_type.
var busCapacities = [...]struct {
	Type  BusType
	Seats int
}{
	{BusSmall, 20},
	{BusMedium, 30},
	{BusLarge, 50},
}

// BusTypes lists every known bus class in capacity order.
func BusTypes() []BusType {
	out := make([]BusType, 0, len(busCapacities))
	for _, c := range busCapacities {
		out = append(out, c.Type)
	}
	return out
}

// Valid reports whether b is one of the enumerated bus classes.
func (b BusType) Valid() bool {
	_, ok := b.lookup()
	return ok
}

// Capacity returns the number of seats for b, or 0 for an unknown class.
func (b BusType) Capacity() int {
	seats, _ := b.lookup()
	return seats
}

func (b BusType) lookup() (int, bool) {
	for _, c := range busCapacities {
		if c.Type == b {
			return c.Seats, true
		}
	}
	return 0, false
}

// SeatsInfo is the derived occupancy summary of a trip.
// AvailableSeats goes negative when a trip is overbooked.
type SeatsInfo struct {
	TotalSeats     int `json:"totalSeats"`
	OccupiedSeats  int `json:"occupiedSeats"`
	AvailableSeats int `json:"availableSeats"`
}

// NewSeatsInfo computes occupancy for a bus class and passenger count.
func NewSeatsInfo(b BusType, occupied int) SeatsInfo {
	total := b.Capacity()
	return SeatsInfo{
		TotalSeats:     total,
		OccupiedSeats:  occupied,
		AvailableSeats: total - occupied,
	}
}
