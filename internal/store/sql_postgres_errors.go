package store

import (
	"github.com/jackc/pgerrcode"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// looking at the SQLSTATE code of the *pgconn.PgError returned by pgx.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
//   - 42P01 undefined_table → [ErrNoColumnData] (migrations have not run)
//   - 23505 unique_violation → [ErrDuplicateLineNo]
//   - class 08, 57P01..57P03 → [ErrStorageUnavailable]
func (c *PostgresErrorClassifier) Classify(err error) error {
	code := postgresError(err)
	if code == "" {
		return nil
	}

	switch {
	case code == pgerrcode.UndefinedTable:
		return ErrNoColumnData
	case code == pgerrcode.UniqueViolation:
		return ErrDuplicateLineNo
	case pgerrcode.IsConnectionException(code),
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown,
		code == pgerrcode.CannotConnectNow:
		return ErrStorageUnavailable
	}

	return nil
}
