package store

import "strings"

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite. The
// driver reports these conditions through the message text only.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "no such table"):
		return ErrNoColumnData
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicateLineNo
	case strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "unable to open database file"):
		return ErrStorageUnavailable
	}

	return nil
}
