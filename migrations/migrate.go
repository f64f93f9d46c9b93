package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Goose dialects of the supported column stores.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies all pending migrations to db using the given goose dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
