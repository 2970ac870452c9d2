package tanner_test

import (
	"testing"

	"github.com/katalvlaran/qldpcsim/sparsebin"
	"github.com/katalvlaran/qldpcsim/tanner"
	"github.com/stretchr/testify/require"
)

func TestFromMatrixShapeAndEdgeCount(t *testing.T) {
	h, err := sparsebin.FromRowAdj(2, 3, [][]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	g, err := tanner.FromMatrix(h)
	require.NoError(t, err)
	require.Equal(t, 2, g.M())
	require.Equal(t, 3, g.N())
	require.Equal(t, 4, g.NumEdges())
}

func TestRowAndColEdgesMatchMatrix(t *testing.T) {
	h, err := sparsebin.FromRowAdj(2, 3, [][]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	g, err := tanner.FromMatrix(h)
	require.NoError(t, err)

	row0, err := g.RowEdges(0)
	require.NoError(t, err)
	require.Len(t, row0, 2)
	for _, idx := range row0 {
		check, err := g.EdgeCheck(idx)
		require.NoError(t, err)
		require.Equal(t, 0, check)
	}

	col1, err := g.ColEdges(1)
	require.NoError(t, err)
	require.Len(t, col1, 2)
}

func TestMessageReadWrite(t *testing.T) {
	h, err := sparsebin.FromRowAdj(1, 2, [][]int{{0, 1}})
	require.NoError(t, err)
	g, err := tanner.FromMatrix(h)
	require.NoError(t, err)

	require.NoError(t, g.SetBitToCheck(0, 1.5))
	v, err := g.BitToCheck(0)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	require.NoError(t, g.SetCheckToBit(1, -2.0))
	v, err = g.CheckToBit(1)
	require.NoError(t, err)
	require.Equal(t, -2.0, v)
}

func TestOutOfRangeAccess(t *testing.T) {
	h, err := sparsebin.FromRowAdj(1, 1, [][]int{{0}})
	require.NoError(t, err)
	g, err := tanner.FromMatrix(h)
	require.NoError(t, err)

	_, err = g.RowEdges(5)
	require.ErrorIs(t, err, tanner.ErrIndexOutOfRange)

	_, err = g.ColEdges(-1)
	require.ErrorIs(t, err, tanner.ErrIndexOutOfRange)

	_, err = g.BitToCheck(99)
	require.ErrorIs(t, err, tanner.ErrIndexOutOfRange)

	require.ErrorIs(t, g.SetCheckToBit(99, 0), tanner.ErrIndexOutOfRange)
}
