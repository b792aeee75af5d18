package record

import "errors"

// Sentinel errors for the record service layer.
var (
	ErrNotFound      = errors.New("record not found")
	ErrEmailRequired = errors.New("email is required")
)
