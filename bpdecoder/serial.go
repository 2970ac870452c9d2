package bpdecoder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qldpcsim/bitvec"
)

// serialIteration runs one Serial or SerialRelative round: bits are
// visited one at a time in the schedule's order, each recomputing its own
// check_to_bit extrinsics from the row's other current bit_to_check
// messages and immediately publishing its new bit_to_check messages, so
// later bits in the same round already see earlier bits' updates.
func (d *Decoder) serialIteration(t int, syndrome *bitvec.BitVector) error {
	d.orderPermutation(t)

	for _, j := range d.permutation {
		edges, err := d.graph.ColEdges(j)
		if err != nil {
			return fmt.Errorf("serialIteration: %w", err)
		}

		total := d.lambda0[j]
		extrinsics := d.colBuf[:len(edges)]
		for k, idx := range edges {
			check, err := d.graph.EdgeCheck(idx)
			if err != nil {
				return fmt.Errorf("serialIteration: %w", err)
			}
			c2b, err := d.checkToBitExcluding(check, idx, t, syndrome)
			if err != nil {
				return fmt.Errorf("serialIteration: %w", err)
			}
			extrinsics[k] = c2b
			total += c2b
		}

		d.lambda[j] = total
		if err := d.decision.Set(j, total <= 0); err != nil {
			return fmt.Errorf("serialIteration: %w", err)
		}
		for k, idx := range edges {
			if err := d.graph.SetBitToCheck(idx, total-extrinsics[k]); err != nil {
				return fmt.Errorf("serialIteration: %w", err)
			}
		}
	}

	return nil
}

// checkToBitExcluding computes the check-to-bit message check i would send
// to the edge excludeIdx, from every other edge currently incident to
// check i — the same sum-product/min-sum rule as the parallel schedule,
// restricted to the row with excludeIdx's own contribution removed.
func (d *Decoder) checkToBitExcluding(check, excludeIdx, t int, syndrome *bitvec.BitVector) (float64, error) {
	rowEdges, err := d.graph.RowEdges(check)
	if err != nil {
		return 0, fmt.Errorf("checkToBitExcluding: %w", err)
	}
	sigma := checkSign(syndrome, check)

	if d.cfg.Method == SumProduct {
		prod := 1.0
		for _, idx := range rowEdges {
			if idx == excludeIdx {
				continue
			}
			b2c, err := d.graph.BitToCheck(idx)
			if err != nil {
				return 0, fmt.Errorf("checkToBitExcluding: %w", err)
			}
			prod *= math.Tanh(b2c / 2)
		}
		prod = clamp(prod)

		return sigma * math.Log((1+prod)/(1-prod)), nil
	}

	alpha := d.msAlpha(t)
	minMag, signProd := math.Inf(1), 1.0
	for _, idx := range rowEdges {
		if idx == excludeIdx {
			continue
		}
		b2c, err := d.graph.BitToCheck(idx)
		if err != nil {
			return 0, fmt.Errorf("checkToBitExcluding: %w", err)
		}
		minMag = math.Min(minMag, math.Abs(b2c))
		if b2c < 0 {
			signProd *= -1
		}
	}

	return sigma * signProd * alpha * minMag, nil
}

// orderPermutation rebuilds d.permutation for iteration t according to
// the configured schedule: natural (optionally shuffled) order for
// Serial, descending-reliability order for SerialRelative.
func (d *Decoder) orderPermutation(t int) {
	switch d.cfg.Schedule {
	case Serial:
		if d.cfg.RandomSerial {
			d.rng.Shuffle(len(d.permutation), func(i, j int) {
				d.permutation[i], d.permutation[j] = d.permutation[j], d.permutation[i]
			})
		}
	case SerialRelative:
		reliability := d.lambda0
		if t > 1 {
			reliability = d.lambda
		}
		sort.SliceStable(d.permutation, func(a, b int) bool {
			return math.Abs(reliability[d.permutation[a]]) > math.Abs(reliability[d.permutation[b]])
		})
	}
}
