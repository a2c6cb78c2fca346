package validators

import (
	"errors"
	"strings"
)

var (
	ErrValidation    = errors.New("request validation failed")
	ErrUnknownSchema = errors.New("unknown schema")
)

// ValidationError lists every reason a document was rejected. It matches
// [ErrValidation] with errors.Is.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Detail()
}

// Detail joins the reasons into one human-readable line.
func (e *ValidationError) Detail() string {
	return strings.Join(e.Details, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
