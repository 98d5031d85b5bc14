package validators

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// Length limits, counted in characters.
const (
	MaxUserNameLength         = 250
	MaxEmailLength            = 200
	MaxPasswordLength         = 100
	MaxVideoNameLength        = 255
	MaxVideoDescriptionLength = 500
)

// checkLength requires 1..max characters.
func checkLength(value string, max int) error {
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return ErrEmptyValue
	}
	if n > max {
		return fmt.Errorf("%w (max %d characters)", ErrValueTooLong, max)
	}
	return nil
}

func checkEmail(value string) error {
	if err := checkLength(value, MaxEmailLength); err != nil {
		return err
	}

	address, err := mail.ParseAddress(value)
	if err != nil || address.Address != value {
		return ErrInvalidEmail
	}
	return nil
}

func checkID(id int64, invalid error) error {
	if id <= 0 {
		return invalid
	}
	return nil
}
