package errchannel

import "errors"

// Sentinel errors for errchannel package operations.
var (
	// ErrInvalidQubitCount indicates a non-positive qubit count was
	// requested at construction.
	ErrInvalidQubitCount = errors.New("errchannel: qubit count must be > 0")

	// ErrInvalidRate indicates an error rate outside [0, 1] was supplied.
	ErrInvalidRate = errors.New("errchannel: error rate must be within [0, 1]")

	// ErrInvalidBatchSize indicates SampleBatch was called with a negative
	// count.
	ErrInvalidBatchSize = errors.New("errchannel: batch size must be >= 0")

	// ErrNilRand indicates a nil *rand.Rand was passed to Sample/SampleBatch.
	ErrNilRand = errors.New("errchannel: random source is nil")
)
