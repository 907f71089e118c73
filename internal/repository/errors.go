package repository

import "errors"

var (
	// ErrNotFound is returned when a slot has never been written.
	ErrNotFound = errors.New("not found")
	// ErrMalformed is returned when a slot holds data that does not decode
	// into the current document shape.
	ErrMalformed = errors.New("malformed stored data")
)
