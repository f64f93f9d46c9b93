package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: ErrNoColumnData},
		{name: "wrapped undefined table", err: fmt.Errorf("query: %w", pgError(pgerrcode.UndefinedTable)), want: ErrNoColumnData},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: ErrDuplicateLineNo},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: ErrStorageUnavailable},
		{name: "connection does not exist", err: pgError(pgerrcode.ConnectionDoesNotExist), want: ErrStorageUnavailable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: ErrStorageUnavailable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: ErrStorageUnavailable},
		{name: "undefined column", err: pgError(pgerrcode.UndefinedColumn), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "missing table", err: errors.New("no such table: column_rows"), want: ErrNoColumnData},
		{name: "duplicate line", err: errors.New("UNIQUE constraint failed: column_rows.line_no"), want: ErrDuplicateLineNo},
		{name: "locked", err: errors.New("database is locked"), want: ErrStorageUnavailable},
		{name: "other", err: errors.New("near \"SELEC\": syntax error"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("columns.db"))
	assert.False(t, isPostgresDSN(":memory:"))
}
