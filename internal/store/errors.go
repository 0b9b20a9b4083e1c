package store

import "errors"

// Sentinel errors returned by the stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable is returned by write operations when the document
	// store cannot be opened or migrated. Read operations never return it;
	// they log the failure and degrade to an empty result instead.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrUserAlreadyExists is returned when a user with the same email is
	// already registered. The existing record is left untouched.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUnsupportedDiaryBackend is returned by [NewDiaryMedium] for an
	// unknown backend name.
	ErrUnsupportedDiaryBackend = errors.New("unsupported diary backend")

	// ErrSessionMarkerNotFound is returned when no session marker has been
	// written yet or it was cleared by a logout.
	ErrSessionMarkerNotFound = errors.New("session marker not found")

	// ErrCorruptSessionMarker is returned when the marker file exists but
	// does not describe a user.
	ErrCorruptSessionMarker = errors.New("corrupt session marker")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingDocument is returned when a nested document (sources,
	// messages, record snapshots) cannot be converted to or from JSON.
	ErrEncodingDocument = errors.New("failed to encode document")
)
