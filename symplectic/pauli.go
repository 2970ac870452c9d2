package symplectic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qldpcsim/bitvec"
)

// Pauli is a Pauli operator on n qubits in binary symplectic form: a global
// phase plus two length-n bit vectors. Position i encodes (x=0,z=0)->I,
// (x=1,z=0)->X, (x=0,z=1)->Z, (x=1,z=1)->Y.
type Pauli struct {
	n     int
	phase Phase
	xBits *bitvec.BitVector
	zBits *bitvec.BitVector
}

// New builds a Pauli from explicit phase and bit vectors; both must have
// length n.
func New(n int, phase Phase, xBits, zBits *bitvec.BitVector) (*Pauli, error) {
	if xBits.Len() != n || zBits.Len() != n {
		return nil, fmt.Errorf("New: %w", ErrLengthMismatch)
	}

	return &Pauli{n: n, phase: phase, xBits: xBits, zBits: zBits}, nil
}

// Identity returns the n-qubit identity operator with phase +1.
func Identity(n int) (*Pauli, error) {
	x, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	z, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}

	return &Pauli{n: n, phase: PhaseOne, xBits: x, zBits: z}, nil
}

// FromString parses a Pauli string: an optional leading "+"/"-", an
// optional "i", then one character per qubit from {I, X, Y, Z}.
//
// Prefix semantics: "+X..." -> +1, "-X..." -> -1, "+iX..." -> +i,
// "-iX..." -> -i, "iX..." -> +i, bare "X..." -> +1.
func FromString(s string) (*Pauli, error) {
	idx := 0
	sign := 1
	switch {
	case strings.HasPrefix(s, "+"):
		idx = 1
	case strings.HasPrefix(s, "-"):
		sign = -1
		idx = 1
	}

	hasI := false
	if idx < len(s) && s[idx] == 'i' {
		hasI = true
		idx++
	}

	var phase Phase
	switch {
	case !hasI && sign > 0:
		phase = PhaseOne
	case !hasI && sign < 0:
		phase = PhaseMinusOne
	case hasI && sign > 0:
		phase = PhaseI
	default:
		phase = PhaseMinusI
	}

	body := s[idx:]
	n := len(body)
	x, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("FromString: %w", err)
	}
	z, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("FromString: %w", err)
	}
	for i := 0; i < n; i++ {
		switch body[i] {
		case 'I':
			// x=0, z=0: nothing to set
		case 'X':
			_ = x.Set(i, true)
		case 'Z':
			_ = z.Set(i, true)
		case 'Y':
			_ = x.Set(i, true)
			_ = z.Set(i, true)
		default:
			return nil, fmt.Errorf("FromString: %w: %q", ErrInvalidPauliString, body[i])
		}
	}

	return &Pauli{n: n, phase: phase, xBits: x, zBits: z}, nil
}

// N returns the number of qubits.
func (p *Pauli) N() int { return p.n }

// PhaseOf returns the operator's global phase.
func (p *Pauli) PhaseOf() Phase { return p.phase }

// XBits returns the operator's x-part bit vector. Callers must not mutate it.
func (p *Pauli) XBits() *bitvec.BitVector { return p.xBits }

// ZBits returns the operator's z-part bit vector. Callers must not mutate it.
func (p *Pauli) ZBits() *bitvec.BitVector { return p.zBits }

// NumErrors returns the weight of the operator: the number of qubits on
// which it acts non-trivially, popcount(x_bits | z_bits).
func (p *Pauli) NumErrors() int {
	count := 0
	for i := 0; i < p.n; i++ {
		x, _ := p.xBits.Get(i)
		z, _ := p.zBits.Get(i)
		if x || z {
			count++
		}
	}

	return count
}

// singlePauliCode maps a single-qubit (z,x) pair to a dense 0..3 code used
// only to index the phase-correction table: 0=I, 1=X, 2=Z, 3=Y.
func singlePauliCode(z, x bool) int {
	switch {
	case !z && !x:
		return 0
	case !z && x:
		return 1
	case z && !x:
		return 2
	default:
		return 3
	}
}

// phaseCorrection is the per-position phase multiplier of a Pauli product:
// +1 whenever either operand is I or the two single-qubit Paulis are equal;
// +i for X·Y, Y·Z, Z·X; -i for X·Z, Y·X, Z·Y.
var phaseCorrection = map[[2]int]Phase{
	{1, 3}: PhaseI, {3, 2}: PhaseI, {2, 1}: PhaseI,
	{1, 2}: PhaseMinusI, {3, 1}: PhaseMinusI, {2, 3}: PhaseMinusI,
}

// Product computes a*b: x_bits and z_bits XOR componentwise, phase is
// a.phase * b.phase times the running per-position correction.
func Product(a, b *Pauli) (*Pauli, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("Product: %w", ErrShapeMismatch)
	}

	phase := a.phase.Mul(b.phase)
	x, err := bitvec.New(a.n)
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	z, err := bitvec.New(a.n)
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}

	for i := 0; i < a.n; i++ {
		az, _ := a.zBits.Get(i)
		ax, _ := a.xBits.Get(i)
		bz, _ := b.zBits.Get(i)
		bx, _ := b.xBits.Get(i)

		_ = x.Set(i, ax != bx)
		_ = z.Set(i, az != bz)

		aCode := singlePauliCode(az, ax)
		bCode := singlePauliCode(bz, bx)
		if aCode == 0 || bCode == 0 || aCode == bCode {
			continue // correction is +1, identity for Mul
		}
		phase = phase.Mul(phaseCorrection[[2]int{aCode, bCode}])
	}

	return &Pauli{n: a.n, phase: phase, xBits: x, zBits: z}, nil
}

// Commutes reports whether a and b commute: the symplectic inner product
// <a.z, b.x> + <a.x, b.z> vanishes mod 2.
func Commutes(a, b *Pauli) (bool, error) {
	if a.n != b.n {
		return false, fmt.Errorf("Commutes: %w", ErrShapeMismatch)
	}

	parity := false
	for i := 0; i < a.n; i++ {
		az, _ := a.zBits.Get(i)
		ax, _ := a.xBits.Get(i)
		bz, _ := b.zBits.Get(i)
		bx, _ := b.xBits.Get(i)
		if az && bx {
			parity = !parity
		}
		if ax && bz {
			parity = !parity
		}
	}

	return !parity, nil
}

// String renders p in Pauli-string notation, e.g. "+XZIY" or "-iYZXI".
func (p *Pauli) String() string {
	var b strings.Builder
	b.WriteString(p.phase.String())
	for i := 0; i < p.n; i++ {
		x, _ := p.xBits.Get(i)
		z, _ := p.zBits.Get(i)
		switch singlePauliCode(z, x) {
		case 0:
			b.WriteByte('I')
		case 1:
			b.WriteByte('X')
		case 2:
			b.WriteByte('Z')
		case 3:
			b.WriteByte('Y')
		}
	}

	return b.String()
}
