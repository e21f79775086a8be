package apperrors

import "errors"

var (
	ErrMissingField = errors.New("required field is empty")
	ErrNotNumeric   = errors.New("value must be a whole number")
	ErrNoGoalSet    = errors.New("no goals set")
)

// FieldError ties a validation failure to the form field that caused it, so
// controllers can surface a field-describing notice.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

func MissingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

func NotNumeric(field string) error {
	return &FieldError{Field: field, Err: ErrNotNumeric}
}
