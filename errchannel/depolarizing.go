package errchannel

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qldpcsim/bitvec"
	"github.com/katalvlaran/qldpcsim/csscode"
)

// Depolarizing is the depolarizing channel: each qubit independently draws
// from {I, X, Y, Z} with weights {1-p, p/3, p/3, p/3}.
type Depolarizing struct {
	n int
	p float64
}

// NewDepolarizing constructs a Depolarizing channel on n qubits with total
// error rate p.
func NewDepolarizing(n int, p float64) (*Depolarizing, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDepolarizing: %w", ErrInvalidQubitCount)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("NewDepolarizing: %w", ErrInvalidRate)
	}

	return &Depolarizing{n: n, p: p}, nil
}

// Sample draws one ErrorPattern by choosing a single-qubit Pauli per qubit
// from {I, X, Y, Z} with weights {1-p, p/3, p/3, p/3}; Y sets both x_bits
// and z_bits.
func (c *Depolarizing) Sample(rng *rand.Rand) (*csscode.ErrorPattern, error) {
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

	third := c.p / 3
	for i := 0; i < c.n; i++ {
		draw := rng.Float64()
		switch {
		case draw < third: // X
			_ = x.Set(i, true)
		case draw < 2*third: // Y
			_ = x.Set(i, true)
			_ = z.Set(i, true)
		case draw < 3*third: // Z
			_ = z.Set(i, true)
		default: // I
		}
	}

	return &csscode.ErrorPattern{XBits: x, ZBits: z}, nil
}

// SampleBatch draws n independent ErrorPatterns.
func (c *Depolarizing) SampleBatch(rng *rand.Rand, n int) ([]*csscode.ErrorPattern, error) {
	return sampleBatch(c, rng, n)
}

// XErrorRate returns p/3.
func (c *Depolarizing) XErrorRate() float64 { return c.p / 3 }

// YErrorRate returns p/3.
func (c *Depolarizing) YErrorRate() float64 { return c.p / 3 }

// ZErrorRate returns p/3.
func (c *Depolarizing) ZErrorRate() float64 { return c.p / 3 }
