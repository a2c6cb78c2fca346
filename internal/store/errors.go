package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a read, update or delete filtered by id
	// and owner matches no row. A row owned by another user is reported the
	// same way as a missing one.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an INSERT violates a unique
	// constraint (one profile per user).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotSaved is returned when an INSERT ... RETURNING completes without
	// error but returns no row.
	ErrNotSaved = errors.New("record was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty SET clause).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnknownDriver is returned by NewDB for a driver name it cannot open.
	ErrUnknownDriver = errors.New("unknown database driver")
)
