package content

import "errors"

var (
	// ErrNotFound is returned when a content entity is not found
	ErrNotFound = errors.New("content not found")
)
