package repositories

import (
	"context"
	"database/sql"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

type TripsRepository struct {
	DB *sql.DB
}

func (r TripsRepository) Create(ctx context.Context, t models.Trip) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO trips (id, destination, departure_date, departure_time, price, bus_type)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Destination, t.DepartureDate, t.DepartureTime, t.Price, string(t.BusType),
	)
	return classify(err, "trip", "insert")
}

// ListWithOccupancy returns every trip, newest departure first, with the
// passenger count taken in the same statement.
func (r TripsRepository) ListWithOccupancy(ctx context.Context) ([]models.TripSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT t.id, t.destination, t.departure_date, t.departure_time, t.price, t.bus_type,
		       COUNT(p.id)
		FROM trips t
		LEFT JOIN passengers p ON p.trip_id = t.id
		GROUP BY t.id, t.destination, t.departure_date, t.departure_time, t.price, t.bus_type
		ORDER BY t.departure_date DESC, t.id ASC`)
	if err != nil {
		return nil, classify(err, "trips", "query")
	}
	defer rows.Close()

	out := []models.TripSummary{}
	for rows.Next() {
		var (
			t        models.Trip
			busType  string
			occupied int
		)
		if err := rows.Scan(&t.ID, &t.Destination, &t.DepartureDate, &t.DepartureTime, &t.Price, &busType, &occupied); err != nil {
			return nil, classify(err, "trips", "scan")
		}
		t.BusType = domain.BusType(busType)
		out = append(out, models.TripSummary{Trip: t, SeatsInfo: domain.NewSeatsInfo(t.BusType, occupied)})
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "trips", "iterate")
	}
	return out, nil
}

func (r TripsRepository) GetByID(ctx context.Context, id string) (models.Trip, error) {
	var (
		t       models.Trip
		busType string
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, destination, departure_date, departure_time, price, bus_type
		FROM trips
		WHERE id = ? LIMIT 1`, id,
	).Scan(&t.ID, &t.Destination, &t.DepartureDate, &t.DepartureTime, &t.Price, &busType)
	if err != nil {
		return models.Trip{}, classify(err, "trip", "get")
	}
	t.BusType = domain.BusType(busType)
	return t, nil
}

// Delete removes the trip; passengers follow through ON DELETE CASCADE.
func (r TripsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return classify(err, "trip", "delete")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err, "trip", "delete")
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}
