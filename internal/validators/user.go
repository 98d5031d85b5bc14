package validators

import (
	"context"

	"github.com/MKhiriev/video-blog/models"
)

// Field names understood by UserValidator. They match the JSON keys so that
// error messages point at the offending request field.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// UserValidator validates registration payloads and login credentials.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate supports models.User and models.Credentials, as values or
// pointers. Without fields, a User is checked on name, email and password
// and Credentials on email and password.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldName:
			errs.add(FieldName, checkLength(user.Name, MaxUserNameLength))
		case FieldEmail:
			errs.add(FieldEmail, checkEmail(user.Email))
		case FieldPassword:
			errs.add(FieldPassword, checkLength(user.Password, MaxPasswordLength))
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// login only checks presence and bounds; the address format was enforced at
// registration and an unparseable email simply finds no user.
func (v *UserValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs.add(FieldEmail, checkLength(credentials.Email, MaxEmailLength))
		case FieldPassword:
			errs.add(FieldPassword, checkLength(credentials.Password, MaxPasswordLength))
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
