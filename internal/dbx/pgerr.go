package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. Repositories use it to map duplicate inserts to domain errors.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
