package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator maps a driver error onto the package sentinels.
//
// Classify always returns an error that wraps err itself, so the driver
// message stays available to [Message].
type ErrorClassificator interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
//   - 23505 unique_violation → [ErrAlreadyExists]
//   - P0002 no_data_found    → [ErrNotFound]
//   - anything else          → [ErrExecutingQuery]
func (c *PostgresErrorClassifier) Classify(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case pgerrcode.NoDataFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// SQLiteErrorClassifier implements [ErrorClassificator] for the sqlite3
// development backend.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. UNIQUE and PRIMARY KEY
// constraint failures become [ErrAlreadyExists].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isDriverError reports whether err came from the database server or engine
// rather than from converting a value.
func isDriverError(err error) bool {
	var pgErr *pgconn.PgError
	var liteErr sqlite3.Error
	return errors.As(err, &pgErr) || errors.As(err, &liteErr)
}

// Message returns the database's own description of err: the server message
// for PostgreSQL errors, the sqlite3 error text, or the innermost wrapped
// error otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Error()
	}

	return rootCause(err).Error()
}

// rootCause follows the last wrapped error until it reaches one that wraps
// nothing. fmt.Errorf("%w: %w", sentinel, err) keeps the cause last.
func rootCause(err error) error {
	for {
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			errs := e.Unwrap()
			if len(errs) == 0 {
				return err
			}
			err = errs[len(errs)-1]
		case interface{ Unwrap() error }:
			next := e.Unwrap()
			if next == nil {
				return err
			}
			err = next
		default:
			return err
		}
	}
}
