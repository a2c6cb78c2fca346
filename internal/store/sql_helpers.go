package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/mattn/go-sqlite3"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.UserProfile, error) {
	var p models.UserProfile
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Nickname, &p.DateOfBirth, &p.MedicalConditions, &p.Gender)
	return p, err
}

func scanMedication(row rowScanner) (models.Medication, error) {
	var m models.Medication
	err := row.Scan(&m.ID, &m.UserID, &m.MedicineName, &m.DosageMg, &m.Quantity, &m.IntakeTime, &m.IsActive, &m.Notes)
	return m, err
}

func scanBloodPressureRecord(row rowScanner) (models.BloodPressureRecord, error) {
	var r models.BloodPressureRecord
	err := row.Scan(&r.ID, &r.UserID, timestampScanner{&r.RecordDatetime}, &r.Systolic, &r.Diastolic, &r.HeartRate, &r.Notes)
	return r, err
}

// timestampScanner accepts a timestamp column as time.Time or as the text
// SQLite returns when it cannot see the declared column type (RETURNING).
type timestampScanner struct {
	t *time.Time
}

func (s timestampScanner) Scan(src any) error {
	var text string
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("unsupported timestamp column type %T", src)
	}

	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			*s.t = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", text)
}

// queryOne runs a single-row statement and scans its result.
//
//   - statement failure → classified driver error
//   - no row            → noRowsErr
//   - scan failure      → [ErrScanningRow]
//
// Drivers may defer a statement error until the first row is read, so a
// driver error returned by Scan is classified as well.
func queryOne[T any](db *DB, row *sql.Row, scan func(rowScanner) (T, error), noRowsErr error) (T, error) {
	var zero T

	if err := row.Err(); err != nil {
		return zero, db.classify(err)
	}

	value, err := scan(row)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return zero, noRowsErr
	case isDriverError(err):
		return zero, db.classify(err)
	default:
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// queryMany scans every row of rows and closes it.
func queryMany[T any](db *DB, rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	results := make([]T, 0, 25)
	for rows.Next() {
		value, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, value)
	}

	if err := rows.Err(); err != nil {
		if isDriverError(err) {
			return nil, db.classify(err)
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// execAffectingOne executes a statement filtered by id and owner and
// reports [ErrNotFound] when it touched no row.
func execAffectingOne(ctx context.Context, db *DB, query string, args []any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
