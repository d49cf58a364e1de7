package repositories

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

type PassengerRepository struct {
	DB *sql.DB
}

const passengerColumns = `id, name, cpf, seat_number, has_paid, trip_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPassenger(s rowScanner) (models.Passenger, error) {
	var p models.Passenger
	err := s.Scan(&p.ID, &p.Name, &p.CPF, &p.SeatNumber, &p.HasPaid, &p.TripID)
	return p, err
}

// Create inserts p. cpf uniqueness and the trip reference are enforced by
// the schema, not checked here.
func (r PassengerRepository) Create(ctx context.Context, p models.Passenger) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO passengers (`+passengerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.CPF, p.SeatNumber, p.HasPaid, p.TripID,
	)
	if isForeignKeyViolation(err) {
		return domain.InternalError{Msg: "trip " + p.TripID + " does not exist", Err: errors.WithMessage(err, "insert passenger")}
	}
	return classify(err, "passenger", "insert")
}

func (r PassengerRepository) ListByTrip(ctx context.Context, tripID string) ([]models.Passenger, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE trip_id = ?`, tripID)
	if err != nil {
		return nil, classify(err, "passengers", "query")
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, classify(err, "passengers", "scan")
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "passengers", "iterate")
	}
	return out, nil
}

func (r PassengerRepository) GetByID(ctx context.Context, id string) (models.Passenger, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id = ? LIMIT 1`, id)
	p, err := scanPassenger(row)
	if err != nil {
		return models.Passenger{}, classify(err, "passenger", "get")
	}
	return p, nil
}

// UpdatePayment is a single-statement write; concurrent callers race on the
// row and the last one wins.
func (r PassengerRepository) UpdatePayment(ctx context.Context, id string, hasPaid bool) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE passengers SET has_paid = ? WHERE id = ?`, hasPaid, id)
	return classify(err, "passenger", "update")
}

func (r PassengerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM passengers WHERE id = ?`, id)
	return classify(err, "passenger", "delete")
}
