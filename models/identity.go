package models

// Identity is the caller resolved from a bearer token by the identity
// provider. ID is opaque to the application and is used verbatim as the
// owner (user_id) of every row the caller touches.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// IsZero reports whether the identity carries no user id.
func (i Identity) IsZero() bool {
	return i.ID == ""
}
