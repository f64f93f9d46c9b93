package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
)

// Storages groups the server's column data sources.
type Storages struct {
	// ColumnRepository serves the rows requested by clients.
	ColumnRepository ColumnRepository

	db *DB
}

// NewStorages initialises the column store from cfg:
//  1. With a DSN, it opens PostgreSQL (postgres:// or postgresql://) or
//     SQLite (anything else) and runs pending migrations.
//  2. With a data file, it loads the file. If a database is also configured
//     the file rows replace the table contents, otherwise they are served
//     from memory.
//
// At least one source must be configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	storages := &Storages{}

	if cfg.DB.DSN != "" {
		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages.db = db
		storages.ColumnRepository = NewColumnRepository(db, log)
	}

	if cfg.Files.DataFile != "" {
		rows, err := LoadRowsFromFile(cfg.Files.DataFile)
		if err != nil {
			storages.Close()
			return nil, err
		}
		log.Info().Str("file", cfg.Files.DataFile).Int("rows", len(rows)).Msg("data file loaded")

		if storages.ColumnRepository == nil {
			storages.ColumnRepository = NewFileColumnRepository(rows)
			return storages, nil
		}

		if err := storages.ColumnRepository.ReplaceRows(ctx, rows); err != nil {
			storages.Close()
			return nil, fmt.Errorf("importing data file failed: %w", err)
		}
	}

	if storages.ColumnRepository == nil {
		return nil, fmt.Errorf("%w: no data file or database configured", ErrNoColumnData)
	}

	return storages, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	return db, nil
}
