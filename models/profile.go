package models

// UserProfile is a row of the "user_profiles" table. A user owns at most
// one profile.
type UserProfile struct {
	ID                string  `json:"id"`
	UserID            string  `json:"-"`
	FullName          string  `json:"full_name"`
	Nickname          *string `json:"nickname"`
	DateOfBirth       string  `json:"date_of_birth"`
	MedicalConditions *string `json:"medical_conditions"`
	Gender            string  `json:"gender"`
}

// UserProfileCreate is the body of POST /user-profile.
type UserProfileCreate struct {
	FullName          string  `json:"full_name"`
	Nickname          *string `json:"nickname"`
	DateOfBirth       string  `json:"date_of_birth"`
	MedicalConditions *string `json:"medical_conditions"`
	Gender            string  `json:"gender"`
}

// ToProfile builds the row to insert; the owner and id are assigned by the service.
func (c UserProfileCreate) ToProfile() UserProfile {
	return UserProfile{
		FullName:          c.FullName,
		Nickname:          c.Nickname,
		DateOfBirth:       c.DateOfBirth,
		MedicalConditions: c.MedicalConditions,
		Gender:            c.Gender,
	}
}

var profilePatchFields = PatchFields{
	"full_name":          stringField,
	"nickname":           nullableStringField,
	"date_of_birth":      stringField,
	"medical_conditions": nullableStringField,
	"gender":             stringField,
}

// NewUserProfilePatch builds a profile patch from a decoded PUT body.
func NewUserProfilePatch(body map[string]RawField) (Patch, error) {
	return profilePatchFields.Decode(body)
}
