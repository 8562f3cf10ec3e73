package models

import (
	"errors"
)

// ValidationError blocks an operation before any network call is made.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSecret    = errors.New("invalid dashboard secret")
	ErrIngestInFlight   = errors.New("another submission is already in progress")

	ErrNoImages = ValidationError("at least one image required")
)
