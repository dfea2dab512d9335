package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrJobNotFound is returned when no job with the requested ID exists.
	ErrJobNotFound = errors.New("job was not found")

	// ErrJobAlreadyExists is returned when a job ID collides with a stored job.
	ErrJobAlreadyExists = errors.New("job already exists")

	// ErrTransient marks failures that may succeed when retried (lost
	// connection, deadlock, SQLite lock contention).
	ErrTransient = errors.New("transient storage error")

	// ErrUnsupportedFormat is returned by the export storage for a data
	// format it cannot read or write.
	ErrUnsupportedFormat = errors.New("unsupported data format")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
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
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValue is returned when a value cannot be encoded to or
	// decoded from its stored JSON form.
	ErrEncodingValue = errors.New("failed to encode stored value")
)
