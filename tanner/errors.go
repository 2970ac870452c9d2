package tanner

import "errors"

// Sentinel errors for tanner package operations.
var (
	// ErrIndexOutOfRange indicates a check, bit, or edge index fell outside
	// its valid range.
	ErrIndexOutOfRange = errors.New("tanner: index out of range")
)
