package domain

import "errors"

var (
	// Returned when a section chain cannot form a single continuous journey.
	ErrInvalidRoute = errors.New("invalid route")

	// Returned when a caller-supplied value is out of range (e.g. a negative age).
	ErrInvalidArgument = errors.New("invalid argument")
)
