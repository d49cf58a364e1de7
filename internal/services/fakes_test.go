package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

// memDB mimics the schema rules the services rely on: unique cpf, the trip
// foreign key and the delete cascade.
type memDB struct {
	mu         sync.Mutex
	trips      map[string]models.Trip
	passengers map[string]models.Passenger
	order      []string
	users      map[string]models.User
}

func newMemDB() *memDB {
	return &memDB{
		trips:      map[string]models.Trip{},
		passengers: map[string]models.Passenger{},
		users:      map[string]models.User{},
	}
}

type memTrips struct{ db *memDB }

func (m memTrips) Create(_ context.Context, t models.Trip) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if !t.BusType.Valid() {
		return domain.InternalError{Msg: "Data truncated for column 'bus_type'"}
	}
	m.db.trips[t.ID] = t
	return nil
}

func (m memTrips) ListWithOccupancy(_ context.Context) ([]models.TripSummary, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	counts := map[string]int{}
	for _, p := range m.db.passengers {
		counts[p.TripID]++
	}
	out := []models.TripSummary{}
	for _, t := range m.db.trips {
		out = append(out, models.TripSummary{Trip: t, SeatsInfo: domain.NewSeatsInfo(t.BusType, counts[t.ID])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureDate > out[j].DepartureDate })
	return out, nil
}

func (m memTrips) GetByID(_ context.Context, id string) (models.Trip, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	t, ok := m.db.trips[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return t, nil
}

func (m memTrips) Delete(_ context.Context, id string) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.trips[id]; !ok {
		return domain.NotFoundError{Resource: "trip"}
	}
	delete(m.db.trips, id)
	for pid, p := range m.db.passengers {
		if p.TripID == id {
			delete(m.db.passengers, pid)
		}
	}
	return nil
}

type memPassengers struct{ db *memDB }

func (m memPassengers) Create(_ context.Context, p models.Passenger) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.trips[p.TripID]; !ok {
		return domain.InternalError{Msg: "trip " + p.TripID + " does not exist"}
	}
	for _, other := range m.db.passengers {
		if other.CPF == p.CPF {
			return domain.ConflictError{Resource: "passenger", Err: fmt.Errorf("Duplicate entry '%s' for key 'uniq_passengers_cpf'", p.CPF)}
		}
	}
	m.db.passengers[p.ID] = p
	m.db.order = append(m.db.order, p.ID)
	return nil
}

func (m memPassengers) ListByTrip(_ context.Context, tripID string) ([]models.Passenger, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	out := []models.Passenger{}
	for _, id := range m.db.order {
		if p, ok := m.db.passengers[id]; ok && p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memPassengers) GetByID(_ context.Context, id string) (models.Passenger, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	p, ok := m.db.passengers[id]
	if !ok {
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
	}
	return p, nil
}

func (m memPassengers) UpdatePayment(_ context.Context, id string, hasPaid bool) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if p, ok := m.db.passengers[id]; ok {
		p.HasPaid = hasPaid
		m.db.passengers[id] = p
	}
	return nil
}

func (m memPassengers) Delete(_ context.Context, id string) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	delete(m.db.passengers, id)
	return nil
}

type memUsers struct{ db *memDB }

func (m memUsers) Create(_ context.Context, u models.User) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, other := range m.db.users {
		if other.Email == u.Email {
			return domain.ConflictError{Resource: "user"}
		}
	}
	m.db.users[u.ID] = u
	return nil
}

func (m memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, u := range m.db.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, u := range m.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (m memUsers) GetByID(_ context.Context, id string) (models.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	u, ok := m.db.users[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

// seqIDs returns a generator yielding prefix1, prefix2, ...
func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}
