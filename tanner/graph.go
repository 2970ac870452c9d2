package tanner

import (
	"fmt"

	"github.com/katalvlaran/qldpcsim/sparsebin"
)

// edge holds the two BP messages for one nonzero (check, bit) entry.
type edge struct {
	check      int
	bit        int
	bitToCheck float64
	checkToBit float64
}

// Graph is the Tanner graph message store for one parity-check matrix: M
// check nodes, N variable (bit) nodes, one edge per nonzero entry.
type Graph struct {
	m, n     int
	edges    []edge
	rowEdges [][]int // rowEdges[i]: edge indices of check i, bit-ascending
	colEdges [][]int // colEdges[j]: edge indices of bit j, check-ascending
}

// FromMatrix builds the Tanner graph of an (M, N) parity-check matrix.
func FromMatrix(h *sparsebin.SparseBinMatrix) (*Graph, error) {
	m, n := h.Rows(), h.Cols()
	g := &Graph{m: m, n: n, rowEdges: make([][]int, m), colEdges: make([][]int, n)}

	for i := 0; i < m; i++ {
		row, err := h.RowAdj(i)
		if err != nil {
			return nil, fmt.Errorf("FromMatrix: %w", err)
		}
		for _, j := range row {
			idx := len(g.edges)
			g.edges = append(g.edges, edge{check: i, bit: j})
			g.rowEdges[i] = append(g.rowEdges[i], idx)
			g.colEdges[j] = append(g.colEdges[j], idx)
		}
	}

	return g, nil
}

// M returns the number of check nodes.
func (g *Graph) M() int { return g.m }

// N returns the number of variable (bit) nodes.
func (g *Graph) N() int { return g.n }

// NumEdges returns the total number of nonzero entries.
func (g *Graph) NumEdges() int { return len(g.edges) }

// RowEdges returns the edge indices incident to check i, in the order used
// for forward sweeps; reverse sweeps walk the same slice backwards.
func (g *Graph) RowEdges(i int) ([]int, error) {
	if i < 0 || i >= g.m {
		return nil, fmt.Errorf("RowEdges: %w", ErrIndexOutOfRange)
	}

	return g.rowEdges[i], nil
}

// ColEdges returns the edge indices incident to bit j.
func (g *Graph) ColEdges(j int) ([]int, error) {
	if j < 0 || j >= g.n {
		return nil, fmt.Errorf("ColEdges: %w", ErrIndexOutOfRange)
	}

	return g.colEdges[j], nil
}

// EdgeCheck returns the check index of edge idx.
func (g *Graph) EdgeCheck(idx int) (int, error) {
	if idx < 0 || idx >= len(g.edges) {
		return 0, fmt.Errorf("EdgeCheck: %w", ErrIndexOutOfRange)
	}

	return g.edges[idx].check, nil
}

// EdgeBit returns the bit index of edge idx.
func (g *Graph) EdgeBit(idx int) (int, error) {
	if idx < 0 || idx >= len(g.edges) {
		return 0, fmt.Errorf("EdgeBit: %w", ErrIndexOutOfRange)
	}

	return g.edges[idx].bit, nil
}

// BitToCheck returns the current bit_to_check message of edge idx.
func (g *Graph) BitToCheck(idx int) (float64, error) {
	if idx < 0 || idx >= len(g.edges) {
		return 0, fmt.Errorf("BitToCheck: %w", ErrIndexOutOfRange)
	}

	return g.edges[idx].bitToCheck, nil
}

// SetBitToCheck assigns the bit_to_check message of edge idx.
func (g *Graph) SetBitToCheck(idx int, v float64) error {
	if idx < 0 || idx >= len(g.edges) {
		return fmt.Errorf("SetBitToCheck: %w", ErrIndexOutOfRange)
	}
	g.edges[idx].bitToCheck = v

	return nil
}

// CheckToBit returns the current check_to_bit message of edge idx.
func (g *Graph) CheckToBit(idx int) (float64, error) {
	if idx < 0 || idx >= len(g.edges) {
		return 0, fmt.Errorf("CheckToBit: %w", ErrIndexOutOfRange)
	}

	return g.edges[idx].checkToBit, nil
}

// SetCheckToBit assigns the check_to_bit message of edge idx.
func (g *Graph) SetCheckToBit(idx int, v float64) error {
	if idx < 0 || idx >= len(g.edges) {
		return fmt.Errorf("SetCheckToBit: %w", ErrIndexOutOfRange)
	}
	g.edges[idx].checkToBit = v

	return nil
}
