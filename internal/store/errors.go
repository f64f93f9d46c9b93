package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoColumnData is returned when the store holds no rows at all, or the
	// column table has not been created yet.
	ErrNoColumnData = errors.New("no column data")

	// ErrColumnOutOfRange is returned when a column outside 1..4 is requested.
	ErrColumnOutOfRange = errors.New("column number out of range")

	// ErrReadingDataFile is returned when the text data file cannot be read.
	ErrReadingDataFile = errors.New("error reading data file")

	// ErrDuplicateLineNo is returned when two imported rows share a line
	// number.
	ErrDuplicateLineNo = errors.New("duplicate line number")

	// ErrStorageUnavailable is returned when the database cannot be reached
	// or refuses connections.
	ErrStorageUnavailable = errors.New("column storage unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan column rows")
)
