package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingProfileData means the profile store could not supply a usable snapshot.
	ErrMissingProfileData = errors.New("profile data unavailable")
	// ErrInvalidProfileData means the snapshot is present but fails validation.
	ErrInvalidProfileData = errors.New("invalid profile data")
)

// ProfileFieldError lists the profile fields that are absent or invalid.
type ProfileFieldError struct {
	Fields []string
	Err    error
}

func (e *ProfileFieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(e.Fields, ", "))
}

func (e *ProfileFieldError) Unwrap() error {
	return e.Err
}
