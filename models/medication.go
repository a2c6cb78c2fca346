package models

// Medication is a row of the "medications" table.
type Medication struct {
	ID           int64       `json:"id"`
	UserID       string      `json:"-"`
	MedicineName string      `json:"medicine_name"`
	DosageMg     *int        `json:"dosage_mg"`
	Quantity     string      `json:"quantity"`
	IntakeTime   IntakeTimes `json:"intake_time"`
	IsActive     bool        `json:"is_active"`
	Notes        *string     `json:"notes"`
}

// MedicationCreate is the body of POST /medications. IsActive is a pointer
// so an omitted value can default to true.
type MedicationCreate struct {
	MedicineName string      `json:"medicine_name"`
	DosageMg     *int        `json:"dosage_mg"`
	Quantity     string      `json:"quantity"`
	IntakeTime   IntakeTimes `json:"intake_time"`
	IsActive     *bool       `json:"is_active"`
	Notes        *string     `json:"notes"`
}

// ToMedication builds the row to insert; the owner is assigned by the service.
func (c MedicationCreate) ToMedication() Medication {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	intakeTime := c.IntakeTime
	if intakeTime == nil {
		intakeTime = IntakeTimes{}
	}

	return Medication{
		MedicineName: c.MedicineName,
		DosageMg:     c.DosageMg,
		Quantity:     c.Quantity,
		IntakeTime:   intakeTime,
		IsActive:     isActive,
		Notes:        c.Notes,
	}
}

var medicationPatchFields = PatchFields{
	"medicine_name": stringField,
	"dosage_mg":     nullableIntField,
	"quantity":      stringField,
	"intake_time":   intakeTimesField,
	"is_active":     boolField,
	"notes":         nullableStringField,
}

// NewMedicationPatch builds a medication patch from a decoded PUT body.
func NewMedicationPatch(body map[string]RawField) (Patch, error) {
	return medicationPatchFields.Decode(body)
}
