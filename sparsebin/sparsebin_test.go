package sparsebin_test

import (
	"testing"

	"github.com/katalvlaran/qldpcsim/bitvec"
	"github.com/katalvlaran/qldpcsim/sparsebin"
	"github.com/stretchr/testify/require"
)

func TestFromRowAdjDerivesColAdj(t *testing.T) {
	m, err := sparsebin.FromRowAdj(3, 4, [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	col1, err := m.ColAdj(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, col1)
}

func TestFromColAdjDerivesRowAdj(t *testing.T) {
	m, err := sparsebin.FromColAdj(3, 4, [][]int{{0}, {0, 1}, {1, 2}, {2}})
	require.NoError(t, err)

	row0, err := m.RowAdj(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, row0)
}

func TestNewInconsistentAdjacency(t *testing.T) {
	rowAdj := [][]int{{0, 1}, {1, 2}, {2, 3}}
	colAdj := [][]int{{0}, {0, 1}, {1, 2}, {}} // missing row 2 under column 3
	_, err := sparsebin.New(3, 4, rowAdj, colAdj)
	require.ErrorIs(t, err, sparsebin.ErrInconsistentAdjacency)
}

func TestNewConsistentAdjacency(t *testing.T) {
	rowAdj := [][]int{{0, 1}, {1, 2}, {2, 3}}
	colAdj := [][]int{{0}, {0, 1}, {1, 2}, {2}}
	m, err := sparsebin.New(3, 4, rowAdj, colAdj)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

func TestNewIndexOutOfRange(t *testing.T) {
	_, err := sparsebin.New(2, 2, [][]int{{0}, {5}}, [][]int{{0}, {}, {}, {}, {}, {1}})
	require.ErrorIs(t, err, sparsebin.ErrIndexOutOfRange)
}

// TestAdjacencyConsistencyInvariant checks that for every valid matrix,
// j is in row_adj[i] iff i is in col_adj[j].
func TestAdjacencyConsistencyInvariant(t *testing.T) {
	m, err := sparsebin.FromRowAdj(2, 2, [][]int{{0, 1}, {1}})
	require.NoError(t, err)

	for i := 0; i < m.Rows(); i++ {
		row, _ := m.RowAdj(i)
		for _, j := range row {
			col, _ := m.ColAdj(j)
			require.Contains(t, col, i)
		}
	}
}

func TestMulVec(t *testing.T) {
	m, err := sparsebin.FromRowAdj(3, 4, [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	v, err := bitvec.FromBytes([]byte{1, 0, 1, 0})
	require.NoError(t, err)

	res, err := m.MulVec(v)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 1, 1}, res.Bytes())
}

func TestMulVecShapeMismatch(t *testing.T) {
	m, err := sparsebin.FromRowAdj(2, 3, [][]int{{0}, {1}})
	require.NoError(t, err)
	v, err := bitvec.New(4)
	require.NoError(t, err)

	_, err = m.MulVec(v)
	require.ErrorIs(t, err, sparsebin.ErrShapeMismatch)
}

func TestMulMat(t *testing.T) {
	a, err := sparsebin.FromRowAdj(3, 4, [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	b, err := sparsebin.FromRowAdj(4, 4, [][]int{{0, 2}, {1}, {2}, {0, 1}})
	require.NoError(t, err)

	res, err := a.MulMat(b)
	require.NoError(t, err)

	expected, err := sparsebin.FromRowAdj(3, 4, [][]int{{0, 1, 2}, {1, 2}, {0, 1, 2}})
	require.NoError(t, err)
	require.True(t, res.Equal(expected))
}

func TestMulMatZero(t *testing.T) {
	a, err := sparsebin.FromRowAdj(3, 4, [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	zero, err := sparsebin.Zeros(4, 5)
	require.NoError(t, err)

	res, err := a.MulMat(zero)
	require.NoError(t, err)

	expectedZero, err := sparsebin.Zeros(3, 5)
	require.NoError(t, err)
	require.True(t, res.Equal(expectedZero))
}

func TestMulMatShapeMismatch(t *testing.T) {
	a, err := sparsebin.Zeros(2, 3)
	require.NoError(t, err)
	b, err := sparsebin.Zeros(4, 2)
	require.NoError(t, err)

	_, err = a.MulMat(b)
	require.ErrorIs(t, err, sparsebin.ErrShapeMismatch)
}

// TestTransposeInvolution checks m.Transpose().Transpose() == m.
func TestTransposeInvolution(t *testing.T) {
	m, err := sparsebin.FromRowAdj(3, 4, [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	require.True(t, m.Transpose().Transpose().Equal(m))
}

func TestTransposeShape(t *testing.T) {
	m, err := sparsebin.FromRowAdj(3, 4, [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	transposed := m.Transpose()

	expected, err := sparsebin.FromRowAdj(4, 3, [][]int{{0}, {0, 1}, {1, 2}, {2}})
	require.NoError(t, err)
	require.True(t, transposed.Equal(expected))
}

// TestRankBasic: rank of a 4x4 matrix with a duplicated row is 3.
func TestRankBasic(t *testing.T) {
	m, err := sparsebin.FromRowAdj(4, 4, [][]int{{0, 1}, {1, 2}, {2, 3}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rank())
}

// TestRankBoundsAndTransposeInvariance checks rank <= min(R, C) and
// rank(m) == rank(m^T).
func TestRankBoundsAndTransposeInvariance(t *testing.T) {
	m, err := sparsebin.FromRowAdj(3, 5, [][]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	rank := m.Rank()
	require.LessOrEqual(t, rank, m.Rows())
	require.LessOrEqual(t, rank, m.Cols())
	require.Equal(t, rank, m.Transpose().Rank())
}

func TestRankFullRow(t *testing.T) {
	identity, err := sparsebin.FromRowAdj(3, 3, [][]int{{0}, {1}, {2}})
	require.NoError(t, err)
	require.Equal(t, 3, identity.Rank())
}

func TestRankZeroMatrix(t *testing.T) {
	z, err := sparsebin.Zeros(3, 3)
	require.NoError(t, err)
	require.Equal(t, 0, z.Rank())
}
