package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is the parent of every "row does not exist" error below.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound is returned when no row of the user table has the id.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrPersonNotFound is returned when no row of the people table has the id.
	ErrPersonNotFound = fmt.Errorf("person %w", ErrNotFound)

	// ErrPlanetNotFound is returned when no row of the planets table has the id.
	ErrPlanetNotFound = fmt.Errorf("planet %w", ErrNotFound)

	// ErrVehicleNotFound is returned when no row of the vehicles table has the id.
	ErrVehicleNotFound = fmt.Errorf("vehicle %w", ErrNotFound)

	// ErrFavoriteNotFound is returned when no join row exists for the
	// requested (user, target) pair or favorite id.
	ErrFavoriteNotFound = fmt.Errorf("favorite %w", ErrNotFound)

	// ErrAlreadyExists is returned when an INSERT hits a unique constraint
	// (user e-mail, planet name).
	ErrAlreadyExists = errors.New("row already exists")

	// ErrDanglingReference is returned when an INSERT hits a foreign key
	// constraint.
	ErrDanglingReference = errors.New("referenced row does not exist")

	// ErrUnknownFavoriteKind is returned for a kind without a join table.
	ErrUnknownFavoriteKind = errors.New("unknown favorite kind")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when no driver matches the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
