package models

import "errors"

var (
	// ErrNoQualifyingBooking is returned when a review is submitted by a user
	// without an active or completed booking for the property.
	ErrNoQualifyingBooking = errors.New("user must have an active or completed booking for this property before reviewing")

	// ErrPropertyFull is returned when a booking targets a property whose
	// occupancy flag is set.
	ErrPropertyFull = errors.New("cannot create booking: property is full")
)

// ConstraintViolation signals a domain-invariant failure detected at write
// time. It is distinct from referential-integrity errors raised by the
// database and from schema validation errors raised before the write.
type ConstraintViolation struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string { return e.Err.Error() }

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// IsConstraintViolation reports whether err (or anything it wraps) is a
// domain-invariant failure.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}
