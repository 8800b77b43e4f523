package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPreferenceNotFound is returned when a preference has never been written.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrCredentialsNotFound is returned when no remote login is stored.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrInvalidPreference is returned when a stored preference cannot be
	// decoded (e.g. a partition written by a newer client).
	ErrInvalidPreference = errors.New("invalid stored preference")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
