package db

import (
	"context"
	"database/sql"
)

// QueryRower is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema. Any lookup
// error (bad connection included) reads as "missing".
func HasTable(ctx context.Context, q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// SchemaStatus probes the tables this service owns.
func SchemaStatus(ctx context.Context, q QueryRower) map[string]bool {
	out := map[string]bool{}
	for _, t := range []string{"trips", "passengers", "users"} {
		out[t] = HasTable(ctx, q, t)
	}
	return out
}
