package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrUnknownStatus indicates a status token outside the known set
	ErrUnknownStatus = errors.New("unknown project status")
)
