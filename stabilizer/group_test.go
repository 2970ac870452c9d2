package stabilizer_test

import (
	"testing"

	"github.com/katalvlaran/qldpcsim/stabilizer"
	"github.com/katalvlaran/qldpcsim/symplectic"
	"github.com/stretchr/testify/require"
)

func fiveQubitGenerators(t *testing.T) []*symplectic.Pauli {
	t.Helper()
	strs := []string{"XZZXI", "IXZZX", "XIXZZ", "ZXIXZ"}
	gens := make([]*symplectic.Pauli, len(strs))
	for i, s := range strs {
		p, err := symplectic.FromString(s)
		require.NoError(t, err)
		gens[i] = p
	}

	return gens
}

// TestFiveQubitCodeGroup builds the five-qubit code's stabilizer group and
// checks membership for a known element and a known non-element.
func TestFiveQubitCodeGroup(t *testing.T) {
	g, err := stabilizer.New(fiveQubitGenerators(t))
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 4, g.R())
	require.Equal(t, 16, g.Size())

	member, err := symplectic.FromString("YXXYI")
	require.NoError(t, err)
	isMember, err := g.Contains(member)
	require.NoError(t, err)
	require.True(t, isMember)

	nonMember, err := symplectic.FromString("XXXXX")
	require.NoError(t, err)
	isMember, err = g.Contains(nonMember)
	require.NoError(t, err)
	require.False(t, isMember)
}

func TestNewRejectsNonCommuting(t *testing.T) {
	x, err := symplectic.FromString("X")
	require.NoError(t, err)
	z, err := symplectic.FromString("Z")
	require.NoError(t, err)

	_, err = stabilizer.New([]*symplectic.Pauli{x, z})
	require.ErrorIs(t, err, stabilizer.ErrNonCommuting)
}

func TestNewRejectsLinearlyDependent(t *testing.T) {
	x1, err := symplectic.FromString("XI")
	require.NoError(t, err)
	x2, err := symplectic.FromString("XI")
	require.NoError(t, err)

	_, err = stabilizer.New([]*symplectic.Pauli{x1, x2})
	require.ErrorIs(t, err, stabilizer.ErrLinearlyDependent)
}

func TestNewRejectsQubitCountMismatch(t *testing.T) {
	a, err := symplectic.FromString("X")
	require.NoError(t, err)
	b, err := symplectic.FromString("XX")
	require.NoError(t, err)

	_, err = stabilizer.New([]*symplectic.Pauli{a, b})
	require.ErrorIs(t, err, stabilizer.ErrQubitCountMismatch)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := stabilizer.New(nil)
	require.ErrorIs(t, err, stabilizer.ErrNoGenerators)
}

// TestIteratorClosureCommutesWithGenerators checks every enumerated group
// element commutes with every generator.
func TestIteratorClosureCommutesWithGenerators(t *testing.T) {
	g, err := stabilizer.New(fiveQubitGenerators(t))
	require.NoError(t, err)

	it := stabilizer.NewIterator(g)
	seen := 0
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		seen++
		for _, gen := range g.Generators() {
			commutes, err := symplectic.Commutes(elem, gen)
			require.NoError(t, err)
			require.True(t, commutes)
		}
	}
	require.Equal(t, g.Size(), seen)
}

func TestIteratorRestartable(t *testing.T) {
	g, err := stabilizer.New(fiveQubitGenerators(t))
	require.NoError(t, err)

	it := stabilizer.NewIterator(g)
	first, ok := it.Next()
	require.True(t, ok)

	it.Reset()
	again, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, first.String(), again.String())
}

func TestElementIndexOutOfRange(t *testing.T) {
	g, err := stabilizer.New(fiveQubitGenerators(t))
	require.NoError(t, err)

	_, err = g.Element(-1)
	require.ErrorIs(t, err, stabilizer.ErrIndexOutOfRange)

	_, err = g.Element(g.Size())
	require.ErrorIs(t, err, stabilizer.ErrIndexOutOfRange)
}
