package stabilizer

import (
	"fmt"

	"github.com/katalvlaran/qldpcsim/sparsebin"
	"github.com/katalvlaran/qldpcsim/symplectic"
)

// Group is a stabilizer group: an ordered list of r pairwise-commuting,
// linearly independent Pauli generators on a common qubit count n. The
// group has 2^r elements.
type Group struct {
	n          int
	generators []*symplectic.Pauli
}

// New validates and constructs a Group from generators: all must share a
// qubit count, pairwise commute, and have linearly independent symplectic
// vectors over GF(2).
func New(generators []*symplectic.Pauli) (*Group, error) {
	if len(generators) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoGenerators)
	}

	n := generators[0].N()
	for _, g := range generators {
		if g.N() != n {
			return nil, fmt.Errorf("New: %w", ErrQubitCountMismatch)
		}
	}

	for i := 0; i < len(generators); i++ {
		for j := i + 1; j < len(generators); j++ {
			commutes, err := symplectic.Commutes(generators[i], generators[j])
			if err != nil {
				return nil, fmt.Errorf("New: %w", err)
			}
			if !commutes {
				return nil, fmt.Errorf("New: %w", ErrNonCommuting)
			}
		}
	}

	if err := checkIndependence(generators, n); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	gens := make([]*symplectic.Pauli, len(generators))
	copy(gens, generators)

	return &Group{n: n, generators: gens}, nil
}

// checkIndependence stacks each generator's (x_bits | z_bits) symplectic
// vector as a row of a 2n-wide GF(2) matrix and requires the rank to equal
// the generator count.
func checkIndependence(generators []*symplectic.Pauli, n int) error {
	rowAdj := make([][]int, len(generators))
	for i, g := range generators {
		var row []int
		for j := 0; j < n; j++ {
			if bit, _ := g.XBits().Get(j); bit {
				row = append(row, j)
			}
			if bit, _ := g.ZBits().Get(j); bit {
				row = append(row, n+j)
			}
		}
		rowAdj[i] = row
	}

	m, err := sparsebin.FromRowAdj(len(generators), 2*n, rowAdj)
	if err != nil {
		return err
	}
	if m.Rank() != len(generators) {
		return ErrLinearlyDependent
	}

	return nil
}

// N returns the common qubit count of the group's generators.
func (g *Group) N() int { return g.n }

// R returns the number of generators (the group's rank).
func (g *Group) R() int { return len(g.generators) }

// Size returns the group's order, 2^R().
func (g *Group) Size() int { return 1 << uint(len(g.generators)) }

// Generators returns the group's generator list. Callers must not mutate it.
func (g *Group) Generators() []*symplectic.Pauli { return g.generators }

// Element returns the Pauli product of the generators whose bit is set in
// k, phase tracked correctly. k must lie in [0, Size()).
func (g *Group) Element(k int) (*symplectic.Pauli, error) {
	if k < 0 || k >= g.Size() {
		return nil, fmt.Errorf("Element: %w", ErrIndexOutOfRange)
	}

	result, err := symplectic.Identity(g.n)
	if err != nil {
		return nil, fmt.Errorf("Element: %w", err)
	}
	for i, gen := range g.generators {
		if k&(1<<uint(i)) == 0 {
			continue
		}
		result, err = symplectic.Product(result, gen)
		if err != nil {
			return nil, fmt.Errorf("Element: %w", err)
		}
	}

	return result, nil
}

// Contains reports whether p, phase included, is an element of the group,
// by direct search over all 2^R() elements.
func (g *Group) Contains(p *symplectic.Pauli) (bool, error) {
	if p.N() != g.n {
		return false, fmt.Errorf("Contains: %w", ErrQubitCountMismatch)
	}
	for k := 0; k < g.Size(); k++ {
		elem, err := g.Element(k)
		if err != nil {
			return false, fmt.Errorf("Contains: %w", err)
		}
		if bitsEqual(elem, p) {
			return true, nil
		}
	}

	return false, nil
}

func bitsEqual(a, b *symplectic.Pauli) bool {
	return a.XBits().Equal(b.XBits()) && a.ZBits().Equal(b.ZBits()) && a.PhaseOf() == b.PhaseOf()
}

// Iterator walks every element of a Group exactly once, restartable via
// Reset. The zero value is not usable; construct with NewIterator.
type Iterator struct {
	group *Group
	next  int
}

// NewIterator returns an Iterator positioned at the group's first element.
func NewIterator(g *Group) *Iterator {
	return &Iterator{group: g, next: 0}
}

// Next returns the next element and true, or (nil, false) once every
// element has been produced.
func (it *Iterator) Next() (*symplectic.Pauli, bool) {
	if it.next >= it.group.Size() {
		return nil, false
	}
	elem, err := it.group.Element(it.next)
	if err != nil {
		return nil, false
	}
	it.next++

	return elem, true
}

// Reset rewinds the iterator to the group's first element.
func (it *Iterator) Reset() {
	it.next = 0
}
