package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when no item matches the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrUsernameAlreadyExists is returned when a create or update would
	// duplicate another user's username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a create or update would
	// duplicate another user's email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserHasItems is returned when deleting a user that still owns items.
	ErrUserHasItems = errors.New("user has items")

	// ErrReferencedUserNotFound is returned when an item references a user id
	// that does not exist.
	ErrReferencedUserNotFound = errors.New("referenced user not found")
)

// Constraint errors produced by an [ErrorClassificator] from driver errors.
var (
	// ErrUniqueViolation indicates a UNIQUE constraint failure. The offending
	// column is available through [ConstraintError].
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation indicates a FOREIGN KEY constraint failure.
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")

	// ErrStatementTimeout indicates the statement deadline expired.
	ErrStatementTimeout = errors.New("statement timeout exceeded")
)

// Low-level database operation errors. These are returned (or wrapped) by
// [DB.QueryOrExecute] when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
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

	// ErrScanningRows is returned when reading column values from a result
	// set fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnknownQueryMode is returned for a [Mode] other than FetchOne,
	// FetchMany or Execute.
	ErrUnknownQueryMode = errors.New("unknown query mode")

	// ErrUnexpectedColumnType is returned when a row value cannot be
	// converted into the model field type.
	ErrUnexpectedColumnType = errors.New("unexpected column type")
)
