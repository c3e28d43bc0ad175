package repository

import "errors"

var (
	ErrInvalidAircraftData = errors.New("invalid aircraft data")
)
