// Package tanner implements the per-edge message store for the Tanner
// graph of a binary parity-check matrix.
//
// For an (M, N) parity-check matrix, one Edge exists per nonzero entry
// (check i, bit j), each carrying two float64 messages, bit_to_check and
// check_to_bit. Edges are stored in a single append-only slice; per-row and
// per-column index slices give O(1)-amortized forward iteration over a
// check's or a bit's edges, and reverse iteration is the same slice walked
// backwards. The denormalized layout keeps edge lookup as plain index
// arithmetic instead of a map keyed by (check, bit) pairs.
package tanner
