package csscode

import (
	"fmt"

	"github.com/katalvlaran/qldpcsim/bitvec"
	"github.com/katalvlaran/qldpcsim/sparsebin"
)

// CssCode is a CSS quantum code: a pair of binary parity-check matrices
// (H_X, H_Z) sharing a column count n, with H_X*H_Z^T = 0 over GF(2) and
// k := n - rank(H_X) - rank(H_Z) > 0.
type CssCode struct {
	hx *sparsebin.SparseBinMatrix
	hz *sparsebin.SparseBinMatrix
	n  int
	k  int
}

// FromParityCheckMatrices constructs a CssCode, enforcing orthogonality and
// k > 0.
func FromParityCheckMatrices(hx, hz *sparsebin.SparseBinMatrix) (*CssCode, error) {
	if hx.Cols() != hz.Cols() {
		return nil, fmt.Errorf("FromParityCheckMatrices: %w", ErrColumnMismatch)
	}
	n := hx.Cols()

	hzT := hz.Transpose()
	product, err := hx.MulMat(hzT)
	if err != nil {
		return nil, fmt.Errorf("FromParityCheckMatrices: %w", err)
	}
	for i := 0; i < product.Rows(); i++ {
		row, _ := product.RowAdj(i)
		if len(row) != 0 {
			return nil, fmt.Errorf("FromParityCheckMatrices: %w", ErrNotOrthogonal)
		}
	}

	k := n - hx.Rank() - hz.Rank()
	if k <= 0 {
		return nil, fmt.Errorf("FromParityCheckMatrices: %w", ErrNonPositiveK)
	}

	return &CssCode{hx: hx, hz: hz, n: n, k: k}, nil
}

// N returns the number of physical qubits.
func (c *CssCode) N() int { return c.n }

// K returns the number of logical qubits.
func (c *CssCode) K() int { return c.k }

// HX returns the X-type parity-check matrix. Callers must not mutate it.
func (c *CssCode) HX() *sparsebin.SparseBinMatrix { return c.hx }

// HZ returns the Z-type parity-check matrix. Callers must not mutate it.
func (c *CssCode) HZ() *sparsebin.SparseBinMatrix { return c.hz }

// Syndrome is the pair (s_Z, s_X) that detects X- and Z-type errors
// respectively: s_Z = H_Z * x_bits, s_X = H_X * z_bits.
type Syndrome struct {
	SZ *bitvec.BitVector
	SX *bitvec.BitVector
}

// Equal reports whether s and other carry the same s_Z and s_X.
func (s *Syndrome) Equal(other *Syndrome) bool {
	if other == nil {
		return false
	}

	return s.SZ.Equal(other.SZ) && s.SX.Equal(other.SX)
}

// ComputeSyndrome returns the syndrome of e under c.
func (c *CssCode) ComputeSyndrome(e *ErrorPattern) (*Syndrome, error) {
	if e.Len() != c.n {
		return nil, fmt.Errorf("ComputeSyndrome: %w", ErrShapeMismatch)
	}

	sz, err := c.hz.MulVec(e.XBits)
	if err != nil {
		return nil, fmt.Errorf("ComputeSyndrome: %w", err)
	}
	sx, err := c.hx.MulVec(e.ZBits)
	if err != nil {
		return nil, fmt.Errorf("ComputeSyndrome: %w", err)
	}

	return &Syndrome{SZ: sz, SX: sx}, nil
}
