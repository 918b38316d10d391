package database

import "errors"

// Sentinel errors returned by the repositories. HTTP controllers map these
// to 404 and 409 responses respectively.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
