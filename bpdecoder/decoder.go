package bpdecoder

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qldpcsim/bitvec"
	"github.com/katalvlaran/qldpcsim/sparsebin"
	"github.com/katalvlaran/qldpcsim/tanner"
)

// Result is the outcome of a single Decode call.
type Result struct {
	// Decision is the hard bit-error estimate, length N.
	Decision *bitvec.BitVector

	// Converged reports whether the recomputed syndrome matched the input
	// syndrome before MaxIter was exhausted.
	Converged bool

	// Iterations is the number of message-passing rounds actually run.
	Iterations int
}

// Decoder runs belief propagation against a single fixed parity-check
// matrix. Construct with New; a Decoder's internal scratch state is reset
// at the start of every Decode call, so a single instance may be reused
// across many Decode calls on different syndromes but must not be shared
// across goroutines calling Decode concurrently.
type Decoder struct {
	h     *sparsebin.SparseBinMatrix
	graph *tanner.Graph
	cfg   Config
	rng   *rand.Rand

	m, n    int
	lambda0 []float64 // ln((1-p[j])/p[j]), fixed for the Decoder's lifetime

	// scratch, reset on every Decode call
	lambda      []float64
	decision    *bitvec.BitVector
	candidate   *bitvec.BitVector
	permutation []int

	// per-row/per-column sweep buffers, sized to the largest degree at
	// construction so Decode never allocates
	rowBufA []float64
	rowBufB []float64
	rowBufC []float64
	rowBufD []float64
	colBuf  []float64
}

// New builds a Decoder for parity-check matrix h with per-bit channel
// error probability p (length h.Cols()). rng is required only when
// cfg.RandomSerial is set under the Serial schedule; pass nil otherwise.
func New(h *sparsebin.SparseBinMatrix, p []float64, cfg Config, rng *rand.Rand) (*Decoder, error) {
	n := h.Cols()
	if len(p) != n {
		return nil, fmt.Errorf("New: %w", ErrLengthMismatch)
	}
	for _, pj := range p {
		if pj < 0 || pj > 1 {
			return nil, fmt.Errorf("New: %w", ErrInvalidProbability)
		}
	}
	if cfg.Method != SumProduct && cfg.Method != MinSum {
		return nil, fmt.Errorf("New: %w", ErrInvalidMethod)
	}
	if cfg.Schedule != Parallel && cfg.Schedule != Serial && cfg.Schedule != SerialRelative {
		return nil, fmt.Errorf("New: %w", ErrInvalidSchedule)
	}
	if cfg.Schedule == Serial && cfg.RandomSerial && rng == nil {
		return nil, fmt.Errorf("New: %w", ErrNilRand)
	}

	graph, err := tanner.FromMatrix(h)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	lambda0 := make([]float64, n)
	for j, pj := range p {
		lambda0[j] = math.Log((1 - pj) / pj)
	}

	permutation := make([]int, n)
	for j := range permutation {
		permutation[j] = j
	}

	m := h.Rows()
	maxRowDeg, maxColDeg := 0, 0
	for i := 0; i < m; i++ {
		row, _ := h.RowAdj(i) // i always in range
		if len(row) > maxRowDeg {
			maxRowDeg = len(row)
		}
	}
	for j := 0; j < n; j++ {
		col, _ := h.ColAdj(j)
		if len(col) > maxColDeg {
			maxColDeg = len(col)
		}
	}

	decision, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	candidate, err := bitvec.New(m)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Decoder{
		h:           h,
		graph:       graph,
		cfg:         cfg,
		rng:         rng,
		m:           m,
		n:           n,
		lambda0:     lambda0,
		lambda:      make([]float64, n),
		decision:    decision,
		candidate:   candidate,
		permutation: permutation,
		rowBufA:     make([]float64, maxRowDeg),
		rowBufB:     make([]float64, maxRowDeg),
		rowBufC:     make([]float64, maxRowDeg),
		rowBufD:     make([]float64, maxRowDeg),
		colBuf:      make([]float64, maxColDeg),
	}, nil
}

// clamp bounds a tanh-product to avoid ln(0) / division by zero at the
// sum-product check-node update.
const clampBound = 0.9999999

func clamp(x float64) float64 {
	if x > clampBound {
		return clampBound
	}
	if x < -clampBound {
		return -clampBound
	}

	return x
}

// msAlpha returns the min-sum damping factor for iteration t (1-based):
// the fixed Config.MsScale if nonzero, else the adaptive 1 - 2^(-t).
func (d *Decoder) msAlpha(t int) float64 {
	if d.cfg.MsScale != 0 {
		return d.cfg.MsScale
	}

	return 1 - math.Pow(2, -float64(t))
}

// checkSign returns -1.0 if syndrome bit i is set, +1.0 otherwise: the
// sign correction folding the target syndrome into every check's outgoing
// messages.
func checkSign(syndrome *bitvec.BitVector, i int) float64 {
	bit, _ := syndrome.Get(i) // i always in range: caller iterates 0..M-1
	if bit {
		return -1
	}

	return 1
}

// Decode runs belief propagation against syndrome (length M) and returns
// the decoded error pattern. ctx is checked for cancellation once per
// iteration; a canceled context aborts with the partial decision made so
// far and a non-nil error.
func (d *Decoder) Decode(ctx context.Context, syndrome *bitvec.BitVector) (*Result, error) {
	if syndrome.Len() != d.m {
		return nil, fmt.Errorf("Decode: %w", ErrLengthMismatch)
	}

	d.resetForDecode()

	for t := 1; t <= d.cfg.MaxIter; t++ {
		if err := ctx.Err(); err != nil {
			return &Result{Decision: d.decision.Clone(), Converged: false, Iterations: t - 1}, fmt.Errorf("Decode: %w", err)
		}

		var err error
		switch d.cfg.Schedule {
		case Parallel:
			err = d.parallelIteration(t, syndrome)
		default:
			err = d.serialIteration(t, syndrome)
		}
		if err != nil {
			return nil, fmt.Errorf("Decode: %w", err)
		}

		d.recomputeCandidate()
		if d.candidate.Equal(syndrome) {
			return &Result{Decision: d.decision.Clone(), Converged: true, Iterations: t}, nil
		}
	}

	return &Result{Decision: d.decision.Clone(), Converged: false, Iterations: d.cfg.MaxIter}, nil
}

// recomputeCandidate rebuilds the candidate syndrome in place: clear it,
// then for every bit currently decided 1, XOR that bit's column into it.
func (d *Decoder) recomputeCandidate() {
	d.candidate.Reset()
	for j := 0; j < d.n; j++ {
		bit, _ := d.decision.Get(j) // j always in range
		if !bit {
			continue
		}
		col, _ := d.h.ColAdj(j)
		for _, i := range col {
			_ = d.candidate.Flip(i)
		}
	}
}

// resetForDecode reinitializes all per-call scratch state: every edge's
// bit_to_check message to lambda0 of its bit, lambda to lambda0, and the
// decision vector to zero.
func (d *Decoder) resetForDecode() {
	d.decision.Reset()
	copy(d.lambda, d.lambda0)

	for j := 0; j < d.n; j++ {
		edges, _ := d.graph.ColEdges(j) // j always in range
		for _, idx := range edges {
			_ = d.graph.SetBitToCheck(idx, d.lambda0[j])
		}
	}
	for j := range d.permutation {
		d.permutation[j] = j
	}
}
