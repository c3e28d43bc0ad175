package domain

import "errors"

var (
	ErrInvalidInterval   = errors.New("departure must be after arrival")
	ErrInvalidClock      = errors.New("invalid clock format, expected HH:MM")
	ErrUnknownAircraft   = errors.New("aircraft not found")
	ErrDuplicateAircraft = errors.New("aircraft already registered")
)
