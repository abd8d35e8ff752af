package repositories

import "errors"

// ErrNotFound is returned when a record does not exist or is not
// visible to the requesting owner. Callers match it with errors.Is.
var ErrNotFound = errors.New("record not found")
