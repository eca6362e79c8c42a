package engine

import "github.com/cockroachdb/errors"

// Filter parameter errors. Missing columns are never errors; they surface as
// Warnings on the affected check.
var (
	ErrUnknownEvent  = errors.New("unknown event")
	ErrInvalidStatus = errors.New("invalid response status")
)
