package intake

import "errors"

var (
	// ErrMessageNotFound is returned when a contact message is not found
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrApplicationNotFound is returned when an application is not found
	ErrApplicationNotFound = errors.New("application not found")
)
