package errchannel

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qldpcsim/csscode"
)

// Channel is the capability set a Pauli error model must provide: sample a
// single error pattern, sample a batch, and report its per-Pauli-type
// marginal error rates.
type Channel interface {
	// Sample draws a single ErrorPattern using rng.
	Sample(rng *rand.Rand) (*csscode.ErrorPattern, error)
	// SampleBatch draws n independent ErrorPatterns using rng; equivalent
	// to calling Sample n times.
	SampleBatch(rng *rand.Rand, n int) ([]*csscode.ErrorPattern, error)
	// XErrorRate returns the marginal per-qubit probability of an X error.
	XErrorRate() float64
	// YErrorRate returns the marginal per-qubit probability of a Y error.
	YErrorRate() float64
	// ZErrorRate returns the marginal per-qubit probability of a Z error.
	ZErrorRate() float64
}

// sampleBatch is the shared "call Sample n times" helper every Channel
// implementation delegates to.
func sampleBatch(c Channel, rng *rand.Rand, n int) ([]*csscode.ErrorPattern, error) {
	if rng == nil {
		return nil, fmt.Errorf("SampleBatch: %w", ErrNilRand)
	}
	if n < 0 {
		return nil, fmt.Errorf("SampleBatch: %w", ErrInvalidBatchSize)
	}

	out := make([]*csscode.ErrorPattern, n)
	for i := 0; i < n; i++ {
		e, err := c.Sample(rng)
		if err != nil {
			return nil, fmt.Errorf("SampleBatch: %w", err)
		}
		out[i] = e
	}

	return out, nil
}
