package db

import (
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration in migrations/.
func Migrate(conn *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("mysql"); err != nil {
		return errors.WithMessage(err, "goose dialect")
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return errors.WithMessage(err, "goose up")
	}
	return nil
}
