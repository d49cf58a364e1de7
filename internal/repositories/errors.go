package repositories

import (
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrNoReferencedRow = 1452
)

// classify maps driver errors onto domain errors. The raw driver message is
// kept so callers can surface it unredacted.
func classify(err error, resource, action string) error {
	if err == nil {
		return nil
	}
	wrapped := errors.WithMessage(err, action+" "+resource)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: wrapped}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry {
		return domain.ConflictError{Resource: resource, Err: wrapped}
	}
	return domain.InternalError{Err: wrapped}
}

// isForeignKeyViolation reports a missing parent row on insert/update.
func isForeignKeyViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlErrNoReferencedRow
}
