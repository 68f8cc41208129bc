package domain

import "errors"

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidDate is returned when a calendar date fails to parse
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrMalformedGame is returned when a payload game is missing
	// required fields and cannot be reconciled
	ErrMalformedGame = errors.New("malformed game payload")
)
