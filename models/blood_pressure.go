package models

import "time"

// BloodPressureRecord is a row of the "blood_pressure_records" table.
type BloodPressureRecord struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"-"`
	RecordDatetime time.Time `json:"record_datetime"`
	Systolic       int       `json:"systolic"`
	Diastolic      int       `json:"diastolic"`
	HeartRate      int       `json:"heart_rate"`
	Notes          *string   `json:"notes"`
}

// BloodPressureRecordCreate is the body of POST /blood-pressure-logs.
type BloodPressureRecordCreate struct {
	RecordDatetime Timestamp `json:"record_datetime"`
	Systolic       int       `json:"systolic"`
	Diastolic      int       `json:"diastolic"`
	HeartRate      int       `json:"heart_rate"`
	Notes          *string   `json:"notes"`
}

// ToRecord builds the row to insert; the owner is assigned by the service.
func (c BloodPressureRecordCreate) ToRecord() BloodPressureRecord {
	return BloodPressureRecord{
		RecordDatetime: c.RecordDatetime.Time().UTC(),
		Systolic:       c.Systolic,
		Diastolic:      c.Diastolic,
		HeartRate:      c.HeartRate,
		Notes:          c.Notes,
	}
}

var bloodPressurePatchFields = PatchFields{
	"record_datetime": timestampField,
	"systolic":        intField,
	"diastolic":       intField,
	"heart_rate":      intField,
	"notes":           nullableStringField,
}

// NewBloodPressureRecordPatch builds a record patch from a decoded PUT body.
func NewBloodPressureRecordPatch(body map[string]RawField) (Patch, error) {
	return bloodPressurePatchFields.Decode(body)
}
