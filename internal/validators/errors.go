package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyValue     = errors.New("must not be empty")
	ErrValueTooLong   = errors.New("is too long")
	ErrInvalidEmail   = errors.New("is not a valid email address")
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidVideoID = errors.New("invalid video ID")
)

// FieldError binds a validation failure to the JSON field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every field failure found in one value, so a
// client sees all problems of a request at once.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		messages = append(messages, fe.Error())
	}
	return strings.Join(messages, "; ")
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, fe)
	}
	return errs
}

// add records err for field when err is non-nil.
func (ve *ValidationErrors) add(field string, err error) {
	if err != nil {
		*ve = append(*ve, FieldError{Field: field, Err: err})
	}
}

// orNil returns ve as an error, or a nil error when nothing was collected.
func (ve ValidationErrors) orNil() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}
