package schemas

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError wraps a field-level validation failure. It is raised
// strictly before any write reaches the database.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks a transfer schema against its struct tags.
func Validate(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
