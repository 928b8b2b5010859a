package repository

import "errors"

// Sentinel errors returned by repositories. Controllers map these to HTTP
// status codes with errors.Is; everything else is a storage failure.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
