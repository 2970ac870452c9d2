package bpdecoder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qldpcsim/bitvec"
)

// parallelIteration runs one flooding-schedule round: every check node
// updates simultaneously from the previous round's bit_to_check messages,
// then every bit node updates simultaneously from the fresh
// check_to_bit messages.
func (d *Decoder) parallelIteration(t int, syndrome *bitvec.BitVector) error {
	for i := 0; i < d.m; i++ {
		if err := d.updateCheckRow(i, t, syndrome); err != nil {
			return fmt.Errorf("parallelIteration: %w", err)
		}
	}

	for j := 0; j < d.n; j++ {
		edges, err := d.graph.ColEdges(j)
		if err != nil {
			return fmt.Errorf("parallelIteration: %w", err)
		}

		total := d.lambda0[j]
		for _, idx := range edges {
			c2b, err := d.graph.CheckToBit(idx)
			if err != nil {
				return fmt.Errorf("parallelIteration: %w", err)
			}
			total += c2b
		}
		d.lambda[j] = total
		if err := d.decision.Set(j, total <= 0); err != nil {
			return fmt.Errorf("parallelIteration: %w", err)
		}

		for _, idx := range edges {
			c2b, err := d.graph.CheckToBit(idx)
			if err != nil {
				return fmt.Errorf("parallelIteration: %w", err)
			}
			if err := d.graph.SetBitToCheck(idx, total-c2b); err != nil {
				return fmt.Errorf("parallelIteration: %w", err)
			}
		}
	}

	return nil
}

// updateCheckRow recomputes every check_to_bit message of check row i from
// the row's current bit_to_check messages, via a forward/reverse sweep so
// each outgoing message excludes only its own edge's contribution.
func (d *Decoder) updateCheckRow(i, t int, syndrome *bitvec.BitVector) error {
	edges, err := d.graph.RowEdges(i)
	if err != nil {
		return fmt.Errorf("updateCheckRow: %w", err)
	}
	deg := len(edges)
	if deg == 0 {
		return nil
	}

	sigma := checkSign(syndrome, i)

	if d.cfg.Method == SumProduct {
		return d.updateCheckRowSumProduct(edges, sigma)
	}

	return d.updateCheckRowMinSum(edges, sigma, d.msAlpha(t))
}

func (d *Decoder) updateCheckRowSumProduct(edges []int, sigma float64) error {
	deg := len(edges)
	tanhVals := d.rowBufA[:deg]
	for k, idx := range edges {
		b2c, err := d.graph.BitToCheck(idx)
		if err != nil {
			return fmt.Errorf("updateCheckRowSumProduct: %w", err)
		}
		tanhVals[k] = math.Tanh(b2c / 2)
	}

	forward := d.rowBufB[:deg]
	running := 1.0
	for k := 0; k < deg; k++ {
		forward[k] = running
		running *= tanhVals[k]
	}

	running = 1.0
	for k := deg - 1; k >= 0; k-- {
		total := clamp(forward[k] * running)
		running *= tanhVals[k]

		val := sigma * math.Log((1+total)/(1-total))
		if err := d.graph.SetCheckToBit(edges[k], val); err != nil {
			return fmt.Errorf("updateCheckRowSumProduct: %w", err)
		}
	}

	return nil
}

func (d *Decoder) updateCheckRowMinSum(edges []int, sigma, alpha float64) error {
	deg := len(edges)
	absVals := d.rowBufA[:deg]
	signVals := d.rowBufB[:deg]
	for k, idx := range edges {
		b2c, err := d.graph.BitToCheck(idx)
		if err != nil {
			return fmt.Errorf("updateCheckRowMinSum: %w", err)
		}
		absVals[k] = math.Abs(b2c)
		if b2c < 0 {
			signVals[k] = -1
		} else {
			signVals[k] = 1
		}
	}

	forwardMin := d.rowBufC[:deg]
	forwardSign := d.rowBufD[:deg]
	runMin, runSign := math.Inf(1), 1.0
	for k := 0; k < deg; k++ {
		forwardMin[k] = runMin
		forwardSign[k] = runSign
		runMin = math.Min(runMin, absVals[k])
		runSign *= signVals[k]
	}

	runMin, runSign = math.Inf(1), 1.0
	for k := deg - 1; k >= 0; k-- {
		magnitude := math.Min(forwardMin[k], runMin)
		sign := forwardSign[k] * runSign
		runMin = math.Min(runMin, absVals[k])
		runSign *= signVals[k]

		val := sigma * sign * alpha * magnitude
		if err := d.graph.SetCheckToBit(edges[k], val); err != nil {
			return fmt.Errorf("updateCheckRowMinSum: %w", err)
		}
	}

	return nil
}
