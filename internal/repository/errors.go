package repository

import "errors"

// ErrNotFound is returned when a persisted row does not exist.
var ErrNotFound = errors.New("not found")
