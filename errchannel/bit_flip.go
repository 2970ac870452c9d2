package errchannel

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qldpcsim/bitvec"
	"github.com/katalvlaran/qldpcsim/csscode"
)

// BitFlip is the bit-flip channel: each qubit independently flips X with
// probability p.
type BitFlip struct {
	n int
	p float64
}

// NewBitFlip constructs a BitFlip channel on n qubits with flip rate p.
func NewBitFlip(n int, p float64) (*BitFlip, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewBitFlip: %w", ErrInvalidQubitCount)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("NewBitFlip: %w", ErrInvalidRate)
	}

	return &BitFlip{n: n, p: p}, nil
}

// Sample draws one ErrorPattern: x_bits[i] is set independently with
// probability p; z_bits is always zero.
func (c *BitFlip) Sample(rng *rand.Rand) (*csscode.ErrorPattern, error) {
	if rng == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilRand)
	}

	x, err := bitvec.New(c.n)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	z, err := bitvec.New(c.n)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	for i := 0; i < c.n; i++ {
		if rng.Float64() < c.p {
			_ = x.Set(i, true)
		}
	}

	return &csscode.ErrorPattern{XBits: x, ZBits: z}, nil
}

// SampleBatch draws n independent ErrorPatterns.
func (c *BitFlip) SampleBatch(rng *rand.Rand, n int) ([]*csscode.ErrorPattern, error) {
	return sampleBatch(c, rng, n)
}

// XErrorRate returns p.
func (c *BitFlip) XErrorRate() float64 { return c.p }

// YErrorRate returns 0.
func (c *BitFlip) YErrorRate() float64 { return 0 }

// ZErrorRate returns 0.
func (c *BitFlip) ZErrorRate() float64 { return 0 }
