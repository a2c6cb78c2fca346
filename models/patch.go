package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrInvalidField is returned when a patch field carries a value of the
// wrong type, or null for a column that is not nullable.
var ErrInvalidField = errors.New("invalid field value")

// FieldError names the patch field that failed to decode. Err keeps the
// decoder message for logs; Detail is safe to show to a client.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidField, e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrInvalidField, e.Err}
}

// Detail returns the client facing message.
func (e *FieldError) Detail() string {
	return e.Field + ": Invalid value"
}

// RawField is a single undecoded member of a JSON request body.
type RawField = json.RawMessage

// Patch holds only the columns a caller asked to change, keyed by column
// name. A nil value clears a nullable column. Absent keys are left untouched.
type Patch map[string]any

// Columns returns the patched column names in a stable order.
func (p Patch) Columns() []string {
	columns := make([]string, 0, len(p))
	for column := range p {
		columns = append(columns, column)
	}
	slices.Sort(columns)
	return columns
}

// Without returns a copy of p without the given columns.
func (p Patch) Without(columns ...string) Patch {
	result := make(Patch, len(p))
	for column, value := range p {
		if slices.Contains(columns, column) {
			continue
		}
		result[column] = value
	}
	return result
}

type fieldDecoder func(raw json.RawMessage) (any, error)

// PatchFields maps every updatable column of an entity to its decoder.
type PatchFields map[string]fieldDecoder

// Decode converts the members of body that name an updatable column into a
// [Patch]. Members that are not updatable columns (including id and user_id)
// are dropped.
func (f PatchFields) Decode(body map[string]RawField) (Patch, error) {
	patch := make(Patch, len(body))
	for name, raw := range body {
		decode, ok := f[name]
		if !ok {
			continue
		}

		value, err := decode(raw)
		if err != nil {
			return nil, &FieldError{Field: name, Err: err}
		}
		patch[name] = value
	}

	return patch, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

var errNullNotAllowed = errors.New("null is not allowed")

func stringField(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, errNullNotAllowed
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func nullableStringField(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, nil
	}
	return stringField(raw)
}

func intField(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, errNullNotAllowed
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func nullableIntField(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, nil
	}
	return intField(raw)
}

func boolField(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, errNullNotAllowed
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func intakeTimesField(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, errNullNotAllowed
	}
	var v IntakeTimes
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if v == nil {
		v = IntakeTimes{}
	}
	return v, nil
}

func timestampField(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, errNullNotAllowed
	}
	var v Timestamp
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v.Time().UTC(), nil
}

// timestampLayouts are accepted for incoming date-times. Values without an
// offset are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a time.Time that accepts ISO 8601 date-times with or without
// an offset when decoded from JSON.
type Timestamp time.Time

// ParseTimestamp parses s using the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid datetime %q", s)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t))
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}
