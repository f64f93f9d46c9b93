package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/models"
)

const columnRowsTable = "column_rows"

var rowColumns = []string{"line_no", "col1", "col2", "col3", "col4"}

// columnRepository is the SQL-backed implementation of [ColumnRepository].
// It reads and writes the "column_rows" table and works with both the
// PostgreSQL and the SQLite connection; only the placeholder style differs.
type columnRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewColumnRepository constructs a [ColumnRepository] backed by db.
func NewColumnRepository(db *DB, logger *logger.Logger) ColumnRepository {
	logger.Debug().Msg("creating column repository")
	return &columnRepository{
		db:     db,
		logger: logger,
	}
}

// Column returns the values of column n ordered by line number.
//
// Error handling:
//   - n outside 1..4 → [ErrColumnOutOfRange].
//   - missing table or no rows → [ErrNoColumnData].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *columnRepository) Column(ctx context.Context, n int) ([]string, error) {
	log := logger.FromContext(ctx)

	if n < 1 || n > models.ColumnCount {
		return nil, ErrColumnOutOfRange
	}

	query, args, err := sq.Select(fmt.Sprintf("col%d", n)).
		From(columnRowsTable).
		OrderBy("line_no").
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*columnRepository.Column").Int("column", n).Msg("failed to query column")
		return nil, r.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			log.Err(err).Str("func", "*columnRepository.Column").Msg("failed to scan column value")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(values) == 0 {
		return nil, ErrNoColumnData
	}

	return values, nil
}

// Rows returns all stored rows ordered by line number.
func (r *columnRepository) Rows(ctx context.Context) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(rowColumns...).
		From(columnRowsTable).
		OrderBy("line_no").
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*columnRepository.Rows").Msg("failed to query rows")
		return nil, r.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.Row, 0)
	for rows.Next() {
		var row models.Row
		if err := rows.Scan(&row.LineNo, &row.Columns[0], &row.Columns[1], &row.Columns[2], &row.Columns[3]); err != nil {
			log.Err(err).Str("func", "*columnRepository.Rows").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(result) == 0 {
		return nil, ErrNoColumnData
	}

	return result, nil
}

// ReplaceRows deletes every stored row and inserts rows in a single
// transaction.
func (r *columnRepository) ReplaceRows(ctx context.Context, rows []models.Row) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := sq.Delete(columnRowsTable).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*columnRepository.ReplaceRows").Msg("failed to begin transaction")
		return r.classify(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "*columnRepository.ReplaceRows").Msg("failed to delete old rows")
		return r.classify(ErrExecutingStatement, err)
	}

	if len(rows) > 0 {
		insert := sq.Insert(columnRowsTable).Columns(rowColumns...)
		for _, row := range rows {
			insert = insert.Values(row.LineNo, row.Columns[0], row.Columns[1], row.Columns[2], row.Columns[3])
		}

		insertQuery, insertArgs, err := insert.PlaceholderFormat(r.db.placeholder).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("func", "*columnRepository.ReplaceRows").Int("rows", len(rows)).Msg("failed to insert rows")
			return r.classify(ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*columnRepository.ReplaceRows").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Int("rows", len(rows)).Msg("column rows replaced")
	return nil
}

// classify wraps a driver error in op, adding the sentinel the dialect's
// classifier maps it to. A missing table means there is nothing to serve yet
// and is reported as plain [ErrNoColumnData].
func (r *columnRepository) classify(op, err error) error {
	var mapped error
	if r.db.errorClassificator != nil {
		mapped = r.db.errorClassificator.Classify(err)
	}

	switch {
	case errors.Is(mapped, ErrNoColumnData):
		return ErrNoColumnData
	case mapped != nil:
		return fmt.Errorf("%w: %w: %w", op, mapped, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}
