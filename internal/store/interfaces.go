package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-column-client/models"
)

// ColumnRepository serves the rows of the column file.
type ColumnRepository interface {
	// Column returns the values of the 1-based column n in line order.
	Column(ctx context.Context, n int) ([]string, error)
	// Rows returns every row in line order.
	Rows(ctx context.Context) ([]models.Row, error)
	// ReplaceRows swaps the stored rows for rows.
	ReplaceRows(ctx context.Context, rows []models.Row) error
}

// ErrorClassificator maps a driver error onto one of the store's sentinel
// errors, or returns nil when the error has no specific meaning.
type ErrorClassificator interface {
	Classify(err error) error
}
