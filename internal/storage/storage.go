package storage

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrVenueExists = errors.New("venue already exists")
)
