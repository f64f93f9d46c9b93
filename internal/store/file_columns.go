package store

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-column-client/models"
)

// LoadRowsFromFile reads the column file at path. See [ParseRows].
func LoadRowsFromFile(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDataFile, err)
	}
	defer f.Close()

	return ParseRows(f)
}

// ParseRows splits r into rows. Every non-blank line becomes one row of up to
// four whitespace separated fields; LineNo is the 1-based line number in r.
func ParseRows(r io.Reader) ([]models.Row, error) {
	rows := make([]models.Row, 0)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, models.NewRow(lineNo, fields))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDataFile, err)
	}

	return rows, nil
}

// fileColumnRepository serves rows loaded from a text file from memory.
type fileColumnRepository struct {
	mu   sync.RWMutex
	rows []models.Row
}

// NewFileColumnRepository constructs a [ColumnRepository] over rows.
func NewFileColumnRepository(rows []models.Row) ColumnRepository {
	return &fileColumnRepository{rows: rows}
}

func (f *fileColumnRepository) Column(_ context.Context, n int) ([]string, error) {
	if n < 1 || n > models.ColumnCount {
		return nil, ErrColumnOutOfRange
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.rows) == 0 {
		return nil, ErrNoColumnData
	}

	values := make([]string, 0, len(f.rows))
	for _, row := range f.rows {
		values = append(values, row.Column(n))
	}

	return values, nil
}

func (f *fileColumnRepository) Rows(_ context.Context) ([]models.Row, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.rows) == 0 {
		return nil, ErrNoColumnData
	}

	rows := make([]models.Row, len(f.rows))
	copy(rows, f.rows)
	return rows, nil
}

func (f *fileColumnRepository) ReplaceRows(_ context.Context, rows []models.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rows = make([]models.Row, len(rows))
	copy(f.rows, rows)
	return nil
}
