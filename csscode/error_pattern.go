package csscode

import (
	"fmt"

	"github.com/katalvlaran/qldpcsim/bitvec"
)

// ErrorPattern is a pair of equal-length bit vectors (x_bits, z_bits)
// describing a Pauli error: qubit i carries an X-component iff x_bits[i]
// is set, and a Z-component iff z_bits[i] is set (both set means Y).
type ErrorPattern struct {
	XBits *bitvec.BitVector
	ZBits *bitvec.BitVector
}

// NewErrorPattern validates that x and z have equal length and wraps them.
func NewErrorPattern(x, z *bitvec.BitVector) (*ErrorPattern, error) {
	if x.Len() != z.Len() {
		return nil, fmt.Errorf("NewErrorPattern: %w", ErrLengthMismatch)
	}

	return &ErrorPattern{XBits: x, ZBits: z}, nil
}

// ZeroErrorPattern returns the all-zero error pattern on n qubits.
func ZeroErrorPattern(n int) (*ErrorPattern, error) {
	x, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("ZeroErrorPattern: %w", err)
	}
	z, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("ZeroErrorPattern: %w", err)
	}

	return &ErrorPattern{XBits: x, ZBits: z}, nil
}

// Len returns the number of qubits the pattern is defined over.
func (e *ErrorPattern) Len() int { return e.XBits.Len() }

// Weight returns popcount(x_bits | z_bits): the number of qubits carrying a
// non-trivial error.
func (e *ErrorPattern) Weight() int {
	weight := 0
	for i := 0; i < e.XBits.Len(); i++ {
		x, _ := e.XBits.Get(i)
		z, _ := e.ZBits.Get(i)
		if x || z {
			weight++
		}
	}

	return weight
}

// XOR returns a new ErrorPattern, the componentwise XOR of e and f.
func XOR(e, f *ErrorPattern) (*ErrorPattern, error) {
	if e.Len() != f.Len() {
		return nil, fmt.Errorf("XOR: %w", ErrLengthMismatch)
	}

	x := e.XBits.Clone()
	if err := x.Xor(f.XBits); err != nil {
		return nil, fmt.Errorf("XOR: %w", err)
	}
	z := e.ZBits.Clone()
	if err := z.Xor(f.ZBits); err != nil {
		return nil, fmt.Errorf("XOR: %w", err)
	}

	return &ErrorPattern{XBits: x, ZBits: z}, nil
}

// Equal reports whether e and f have the same x_bits and z_bits.
func (e *ErrorPattern) Equal(f *ErrorPattern) bool {
	if f == nil {
		return false
	}

	return e.XBits.Equal(f.XBits) && e.ZBits.Equal(f.ZBits)
}
