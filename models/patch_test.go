package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, body string) map[string]RawField {
	t.Helper()
	var fields map[string]RawField
	require.NoError(t, json.Unmarshal([]byte(body), &fields))
	return fields
}

func TestNewMedicationPatch(t *testing.T) {
	patch, err := NewMedicationPatch(decodeBody(t, `{
		"dosage_mg": null,
		"is_active": false,
		"intake_time": ["08:00"],
		"notes": "x",
		"user_id": "someone-else",
		"id": 9
	}`))
	require.NoError(t, err)

	assert.Equal(t, Patch{
		"dosage_mg":   nil,
		"is_active":   false,
		"intake_time": IntakeTimes{"08:00"},
		"notes":       "x",
	}, patch)
	assert.Equal(t, []string{"dosage_mg", "intake_time", "is_active", "notes"}, patch.Columns())
}

func TestNewUserProfilePatch_Empty(t *testing.T) {
	patch, err := NewUserProfilePatch(decodeBody(t, `{"user_id": "x"}`))
	require.NoError(t, err)
	assert.Empty(t, patch)
}

func TestPatchDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		decode func(map[string]RawField) (Patch, error)
		body   string
	}{
		{name: "null for required string", decode: NewUserProfilePatch, body: `{"full_name": null}`},
		{name: "number for string", decode: NewUserProfilePatch, body: `{"gender": 1}`},
		{name: "null for bool", decode: NewMedicationPatch, body: `{"is_active": null}`},
		{name: "string for int", decode: NewMedicationPatch, body: `{"dosage_mg": "10"}`},
		{name: "fraction for int", decode: NewBloodPressureRecordPatch, body: `{"systolic": 120.5}`},
		{name: "null for intake_time", decode: NewMedicationPatch, body: `{"intake_time": null}`},
		{name: "bad datetime", decode: NewBloodPressureRecordPatch, body: `{"record_datetime": "yesterday"}`},
		{name: "int overflow", decode: NewBloodPressureRecordPatch, body: `{"systolic": 99999999999999999999}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.decode(decodeBody(t, tt.body))
			assert.True(t, errors.Is(err, ErrInvalidField), "got %v", err)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, fieldErr.Field+": Invalid value", fieldErr.Detail())
		})
	}
}

func TestNewBloodPressureRecordPatch_Datetime(t *testing.T) {
	patch, err := NewBloodPressureRecordPatch(decodeBody(t, `{"record_datetime": "2024-05-01T10:30:00+02:00", "heart_rate": 70}`))
	require.NoError(t, err)

	at, ok := patch["record_datetime"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), at)
	assert.Equal(t, time.UTC, at.Location())
	assert.Equal(t, 70, patch["heart_rate"])
}

func TestPatch_Without(t *testing.T) {
	patch := Patch{"a": 1, "b": 2, "c": 3}

	assert.Equal(t, Patch{"b": 2}, patch.Without("a", "c"))
	assert.Len(t, patch, 3, "original must not change")
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-05-01T08:30:00Z", want: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)},
		{in: "2024-05-01T08:30:00.123Z", want: time.Date(2024, 5, 1, 8, 30, 0, 123000000, time.UTC)},
		{in: "2024-05-01T08:30:00", want: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)},
		{in: "2024-05-01T08:30", want: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)},
		{in: "2024-05-01 08:30:00", want: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)},
		{in: "2024-05-01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time()), "want %v, got %v", tt.want, got.Time())
		})
	}
}

func TestBloodPressureRecordCreate_ToRecord(t *testing.T) {
	var create BloodPressureRecordCreate
	require.NoError(t, json.Unmarshal([]byte(`{
		"record_datetime": "2024-05-01T10:30:00+02:00",
		"systolic": 120, "diastolic": 80, "heart_rate": 60,
		"user_id": "attacker"
	}`), &create))

	record := create.ToRecord()
	assert.Empty(t, record.UserID)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), record.RecordDatetime)
	assert.Nil(t, record.Notes)
}

func TestMedicationCreate_ToMedication_Defaults(t *testing.T) {
	medication := MedicationCreate{MedicineName: "A", Quantity: "1"}.ToMedication()

	assert.True(t, medication.IsActive)
	assert.Equal(t, IntakeTimes{}, medication.IntakeTime)

	inactive := false
	assert.False(t, MedicationCreate{IsActive: &inactive}.ToMedication().IsActive)
}

func TestResponses_HideOwner(t *testing.T) {
	b, err := json.Marshal(Medication{ID: 1, UserID: "user-1", IntakeTime: IntakeTimes{}})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "user")
	assert.Contains(t, string(b), `"dosage_mg":null`)
}
