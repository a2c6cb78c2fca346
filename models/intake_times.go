package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IntakeTimes lists the times of day a medication is taken ("08:00",
// "after dinner", ...). It is stored as a JSON array.
type IntakeTimes []string

// Value implements [driver.Valuer]. The array is sent as JSON text so the
// same value works for a jsonb column and a SQLite TEXT column.
func (t IntakeTimes) Value() (driver.Value, error) {
	if t == nil {
		t = IntakeTimes{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (t *IntakeTimes) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = IntakeTimes{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported intake_time column type %T", src)
	}

	var times []string
	if err := json.Unmarshal(raw, &times); err != nil {
		return fmt.Errorf("error decoding intake_time: %w", err)
	}
	if times == nil {
		times = []string{}
	}
	*t = times
	return nil
}
