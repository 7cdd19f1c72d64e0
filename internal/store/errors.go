package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateKey is returned when an insert or update violates the
	// unique constraint on username or email.
	ErrDuplicateKey = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidData is returned when PostgreSQL rejects a value, for example
	// a string longer than its column.
	ErrInvalidData = errors.New("invalid data for users table")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery wraps any other failure reported by the driver.
	ErrExecutingQuery = errors.New("error executing sql query")
)
