package sparsebin

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qldpcsim/bitvec"
)

// SparseBinMatrix is a binary (GF(2)) matrix stored as two mutually
// consistent adjacency representations: rowAdj[r] is the sorted list of
// column indices where row r has a 1, and colAdj[c] is the sorted list of
// row indices where column c has a 1.
//
// Invariant: c is in rowAdj[r] iff r is in colAdj[c], for every r, c.
type SparseBinMatrix struct {
	rows, cols int
	rowAdj     [][]int
	colAdj     [][]int
}

// Zeros allocates an R×C matrix with no set entries.
func Zeros(r, c int) (*SparseBinMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("Zeros: %w", ErrInvalidDimensions)
	}

	return &SparseBinMatrix{
		rows:   r,
		cols:   c,
		rowAdj: make([][]int, r),
		colAdj: make([][]int, c),
	}, nil
}

// FromRowAdj builds a matrix from per-row column-index lists, deriving the
// column adjacency automatically. Each inner slice need not be pre-sorted.
func FromRowAdj(r, c int, rowAdj [][]int) (*SparseBinMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromRowAdj: %w", ErrInvalidDimensions)
	}
	if len(rowAdj) != r {
		return nil, fmt.Errorf("FromRowAdj: %w", ErrIndexOutOfRange)
	}

	m := &SparseBinMatrix{rows: r, cols: c, rowAdj: make([][]int, r), colAdj: make([][]int, c)}
	for i, row := range rowAdj {
		sorted := sortedCopy(row)
		for _, j := range sorted {
			if j < 0 || j >= c {
				return nil, fmt.Errorf("FromRowAdj: %w", ErrIndexOutOfRange)
			}
			m.colAdj[j] = append(m.colAdj[j], i)
		}
		m.rowAdj[i] = sorted
	}
	for j := range m.colAdj {
		sort.Ints(m.colAdj[j])
	}

	return m, nil
}

// FromColAdj builds a matrix from per-column row-index lists, deriving the
// row adjacency automatically. Each inner slice need not be pre-sorted.
func FromColAdj(r, c int, colAdj [][]int) (*SparseBinMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromColAdj: %w", ErrInvalidDimensions)
	}
	if len(colAdj) != c {
		return nil, fmt.Errorf("FromColAdj: %w", ErrIndexOutOfRange)
	}

	m := &SparseBinMatrix{rows: r, cols: c, rowAdj: make([][]int, r), colAdj: make([][]int, c)}
	for j, col := range colAdj {
		sorted := sortedCopy(col)
		for _, i := range sorted {
			if i < 0 || i >= r {
				return nil, fmt.Errorf("FromColAdj: %w", ErrIndexOutOfRange)
			}
			m.rowAdj[i] = append(m.rowAdj[i], j)
		}
		m.colAdj[j] = sorted
	}
	for i := range m.rowAdj {
		sort.Ints(m.rowAdj[i])
	}

	return m, nil
}

// New builds a matrix from both adjacency representations at once and
// validates that they agree; use this when both are already available and
// the consistency invariant itself needs to be checked (e.g. deserialized
// input). FromRowAdj/FromColAdj are preferred when only one side is known,
// since they can never produce an inconsistent matrix.
func New(r, c int, rowAdj, colAdj [][]int) (*SparseBinMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("New: %w", ErrInvalidDimensions)
	}
	if len(rowAdj) != r || len(colAdj) != c {
		return nil, fmt.Errorf("New: %w", ErrIndexOutOfRange)
	}

	m := &SparseBinMatrix{rows: r, cols: c, rowAdj: make([][]int, r), colAdj: make([][]int, c)}
	present := make(map[[2]int]bool)
	for i, row := range rowAdj {
		sorted := sortedCopy(row)
		for _, j := range sorted {
			if j < 0 || j >= c {
				return nil, fmt.Errorf("New: %w", ErrIndexOutOfRange)
			}
			present[[2]int{i, j}] = true
		}
		m.rowAdj[i] = sorted
	}
	for j, col := range colAdj {
		sorted := sortedCopy(col)
		for _, i := range sorted {
			if i < 0 || i >= r {
				return nil, fmt.Errorf("New: %w", ErrIndexOutOfRange)
			}
			if !present[[2]int{i, j}] {
				return nil, fmt.Errorf("New: %w", ErrInconsistentAdjacency)
			}
			delete(present, [2]int{i, j})
		}
		m.colAdj[j] = sorted
	}
	if len(present) != 0 {
		return nil, fmt.Errorf("New: %w", ErrInconsistentAdjacency)
	}

	return m, nil
}

func sortedCopy(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)

	return out
}

// Rows returns the number of rows.
func (m *SparseBinMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *SparseBinMatrix) Cols() int { return m.cols }

// RowAdj returns the sorted column indices where row i is set. The
// returned slice must not be mutated by the caller.
func (m *SparseBinMatrix) RowAdj(i int) ([]int, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("RowAdj: %w", ErrIndexOutOfRange)
	}

	return m.rowAdj[i], nil
}

// ColAdj returns the sorted row indices where column j is set. The
// returned slice must not be mutated by the caller.
func (m *SparseBinMatrix) ColAdj(j int) ([]int, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("ColAdj: %w", ErrIndexOutOfRange)
	}

	return m.colAdj[j], nil
}

// MulVec computes H·v over GF(2): row i of the result is the XOR (parity)
// of v[j] over every j in rowAdj[i].
func (m *SparseBinMatrix) MulVec(v *bitvec.BitVector) (*bitvec.BitVector, error) {
	if v.Len() != m.cols {
		return nil, fmt.Errorf("MulVec: %w", ErrShapeMismatch)
	}

	out, err := bitvec.New(m.rows)
	if err != nil {
		return nil, fmt.Errorf("MulVec: %w", err)
	}
	for i := 0; i < m.rows; i++ {
		parity := false
		for _, j := range m.rowAdj[i] {
			bit, _ := v.Get(j) // safe: j validated at construction, < m.cols == v.Len()
			if bit {
				parity = !parity
			}
		}
		_ = out.Set(i, parity) // safe: i < m.rows == out.Len()
	}

	return out, nil
}

// MulMat computes the GF(2) matrix product m·b. Entry (i, k) is the parity
// of |rowAdj(m)[i] ∩ colAdj(b)[k]|.
func (m *SparseBinMatrix) MulMat(b *SparseBinMatrix) (*SparseBinMatrix, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("MulMat: %w", ErrShapeMismatch)
	}

	resultRowAdj := make([][]int, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]int, 0, len(m.rowAdj[i]))
		for k := 0; k < b.cols; k++ {
			if intersectionParity(m.rowAdj[i], b.colAdj[k]) {
				row = append(row, k)
			}
		}
		resultRowAdj[i] = row
	}

	return FromRowAdj(m.rows, b.cols, resultRowAdj)
}

// intersectionParity reports whether two sorted index slices have an
// odd-sized intersection, via a linear two-pointer merge.
func intersectionParity(a, b []int) bool {
	parity := false
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			parity = !parity
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return parity
}

// mergeXor returns the sorted symmetric difference of two sorted index
// slices: indices present in exactly one of a, b. This is the GF(2) XOR of
// the two rows represented as adjacency lists.
func mergeXor(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *SparseBinMatrix) Transpose() *SparseBinMatrix {
	t := &SparseBinMatrix{
		rows:   m.cols,
		cols:   m.rows,
		rowAdj: make([][]int, m.cols),
		colAdj: make([][]int, m.rows),
	}
	for i, row := range m.rowAdj {
		t.colAdj[i] = sortedCopy(row)
	}
	for j, col := range m.colAdj {
		t.rowAdj[j] = sortedCopy(col)
	}

	return t
}

// Rank computes the GF(2) rank of m via Gaussian elimination performed
// directly on the row adjacency lists: a column-major sweep finds a pivot
// row for each column in the unprocessed row range and XORs it (via
// mergeXor on the sorted index lists) into every later row that still
// contains that column; rows above the pivot are left as they are, which
// does not change the rank.
//
// Complexity: Time O(C · nnz(H)) worst case, Space O(nnz(H)).
//
// AI-Hints:
//   - Operates on a private working copy of rowAdj; the receiver's own
//     adjacency is untouched, so Rank is safe to call on a shared matrix.
//   - mergeXor keeps every intermediate row sorted, so pivot search stays a
//     simple linear scan instead of needing a set lookup.
func (m *SparseBinMatrix) Rank() int {
	work := make([][]int, m.rows)
	for i, row := range m.rowAdj {
		work[i] = sortedCopy(row)
	}

	rank := 0
	for col := 0; col < m.cols && rank < m.rows; col++ {
		pivot := -1
		for r := rank; r < m.rows; r++ {
			if containsSorted(work[r], col) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		for r := rank + 1; r < m.rows; r++ {
			if containsSorted(work[r], col) {
				work[r] = mergeXor(work[r], work[rank])
			}
		}
		rank++
	}

	return rank
}

func containsSorted(xs []int, target int) bool {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case xs[mid] == target:
			return true
		case xs[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// Equal reports whether m and other have the same shape and the same set
// entries. Intended for tests and diagnostics.
func (m *SparseBinMatrix) Equal(other *SparseBinMatrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.rowAdj {
		if !equalInts(m.rowAdj[i], other.rowAdj[i]) {
			return false
		}
	}

	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
