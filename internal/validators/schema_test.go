package validators

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *SchemaValidator {
	t.Helper()
	v, err := NewSchemaValidator()
	require.NoError(t, err)
	return v
}

func TestNewSchemaValidator_AllSchemasCompiled(t *testing.T) {
	v := newTestValidator(t)

	for _, id := range []string{
		ProfileCreate, ProfileUpdate,
		MedicationCreate, MedicationUpdate,
		BloodPressureCreate, BloodPressureUpdate,
	} {
		assert.True(t, v.HasSchema(id), id)
	}
	assert.False(t, v.HasSchema("unknown"))
}

func TestSchemaValidator_Validate(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		schema     string
		document   string
		wantErr    bool
		wantDetail string
	}{
		{
			name:     "profile create valid",
			schema:   ProfileCreate,
			document: `{"full_name":"Alice","date_of_birth":"1970-01-01","gender":"female","nickname":null}`,
		},
		{
			name:     "profile create ignores owner",
			schema:   ProfileCreate,
			document: `{"full_name":"Alice","date_of_birth":"1970-01-01","gender":"female","user_id":"someone-else"}`,
		},
		{
			name:       "profile create missing gender",
			schema:     ProfileCreate,
			document:   `{"full_name":"Alice","date_of_birth":"1970-01-01"}`,
			wantErr:    true,
			wantDetail: "gender is required",
		},
		{
			name:     "profile update empty object",
			schema:   ProfileUpdate,
			document: `{}`,
		},
		{
			name:       "profile update null full name",
			schema:     ProfileUpdate,
			document:   `{"full_name":null}`,
			wantErr:    true,
			wantDetail: "full_name",
		},
		{
			name:     "medication create valid",
			schema:   MedicationCreate,
			document: `{"medicine_name":"Lisinopril","dosage_mg":10,"quantity":"1 tablet","intake_time":["08:00"]}`,
		},
		{
			name:       "medication create intake time not array",
			schema:     MedicationCreate,
			document:   `{"medicine_name":"Lisinopril","quantity":"1 tablet","intake_time":"08:00"}`,
			wantErr:    true,
			wantDetail: "intake_time",
		},
		{
			name:       "medication update fractional dosage",
			schema:     MedicationUpdate,
			document:   `{"dosage_mg":2.5}`,
			wantErr:    true,
			wantDetail: "dosage_mg",
		},
		{
			name:     "medication update clears notes",
			schema:   MedicationUpdate,
			document: `{"notes":null}`,
		},
		{
			name:     "blood pressure create valid",
			schema:   BloodPressureCreate,
			document: `{"record_datetime":"2024-03-01T08:30:00Z","systolic":120,"diastolic":80,"heart_rate":70}`,
		},
		{
			name:       "blood pressure create missing datetime",
			schema:     BloodPressureCreate,
			document:   `{"systolic":120,"diastolic":80,"heart_rate":70}`,
			wantErr:    true,
			wantDetail: "record_datetime is required",
		},
		{
			name:       "blood pressure create systolic as string",
			schema:     BloodPressureCreate,
			document:   `{"record_datetime":"2024-03-01T08:30:00Z","systolic":"120","diastolic":80,"heart_rate":70}`,
			wantErr:    true,
			wantDetail: "systolic",
		},
		{
			name:       "not an object",
			schema:     BloodPressureUpdate,
			document:   `[1,2]`,
			wantErr:    true,
			wantDetail: "object",
		},
		{
			name:       "invalid json",
			schema:     BloodPressureUpdate,
			document:   `{"systolic":`,
			wantErr:    true,
			wantDetail: "Invalid JSON body",
		},
		{
			name:       "empty body",
			schema:     ProfileCreate,
			document:   ``,
			wantErr:    true,
			wantDetail: "Invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.schema, []byte(tt.document))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Detail(), tt.wantDetail)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(context.Background(), "nope", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSchema)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestNewSchemaValidatorFromFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "missing id",
			fsys: fstest.MapFS{"s/a.json": {Data: []byte(`{"type":"object"}`)}},
		},
		{
			name: "duplicate id",
			fsys: fstest.MapFS{
				"s/a.json": {Data: []byte(`{"$id":"http://test/x.json","type":"object"}`)},
				"s/b.json": {Data: []byte(`{"$id":"http://test/x.json","type":"object"}`)},
			},
		},
		{
			name: "not json",
			fsys: fstest.MapFS{"s/a.json": {Data: []byte(`{`)}},
		},
		{
			name: "missing dir",
			fsys: fstest.MapFS{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchemaValidatorFromFS(tt.fsys, "s")
			assert.Error(t, err)
		})
	}
}

func TestNewSchemaValidatorFromFS_SkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"s/a.json":  {Data: []byte(`{"$id":"http://test/a.json","type":"object","required":["x"]}`)},
		"s/README":  {Data: []byte(`not a schema`)},
		"s/sub/b.x": {Data: []byte(`ignored`)},
	}

	v, err := NewSchemaValidatorFromFS(fsys, "s")
	require.NoError(t, err)
	assert.True(t, v.HasSchema("http://test/a.json"))
	assert.ErrorIs(t, v.Validate(context.Background(), "http://test/a.json", []byte(`{}`)), ErrValidation)
}
