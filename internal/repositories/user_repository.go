package repositories

import (
	"context"
	"database/sql"

	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt,
	)
	return classify(err, "user", "insert")
}

func (r UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n); err != nil {
		return false, classify(err, "user", "count")
	}
	return n > 0, nil
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, `WHERE email = ?`, email)
}

func (r UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

func (r UserRepository) getOne(ctx context.Context, where string, arg any) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users `+where+` LIMIT 1`, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return models.User{}, classify(err, "user", "get")
	}
	return u, nil
}
