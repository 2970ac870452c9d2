package cssdecoder

import "errors"

// Sentinel errors for cssdecoder package operations.
var (
	// ErrInvalidRate indicates a marginal Pauli-type error rate fell
	// outside the closed interval [0, 1].
	ErrInvalidRate = errors.New("cssdecoder: rate out of range")
)
