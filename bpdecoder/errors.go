package bpdecoder

import "errors"

// Sentinel errors for bpdecoder package operations.
var (
	// ErrLengthMismatch indicates a prior-probability vector or syndrome
	// did not match the parity-check matrix's shape.
	ErrLengthMismatch = errors.New("bpdecoder: length mismatch")

	// ErrInvalidProbability indicates a channel probability fell outside
	// the closed interval [0, 1].
	ErrInvalidProbability = errors.New("bpdecoder: probability out of range")

	// ErrInvalidMethod indicates an unrecognized check-node update method.
	ErrInvalidMethod = errors.New("bpdecoder: invalid method")

	// ErrInvalidSchedule indicates an unrecognized message-passing schedule.
	ErrInvalidSchedule = errors.New("bpdecoder: invalid schedule")

	// ErrNilRand indicates random bit ordering was requested without an
	// injected random source.
	ErrNilRand = errors.New("bpdecoder: nil random source")

	// ErrNonPositiveMaxIter indicates WithMaxIter was given a value <= 0.
	ErrNonPositiveMaxIter = errors.New("bpdecoder: MaxIter must be positive")

	// ErrNegativeMsScale indicates WithMsScale was given a negative alpha.
	ErrNegativeMsScale = errors.New("bpdecoder: MsScale must be non-negative")
)
