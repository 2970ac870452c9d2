// Package bpdecoder implements the binary belief-propagation decoder on a
// single parity-check matrix's Tanner graph.
//
// Decode runs up to Config.MaxIter rounds of message passing — sum-product
// or min-sum check-node updates, under a parallel (flooding), serial, or
// reliability-ordered serial ("SerialRelative") schedule — and returns the
// hard decision, convergence flag, and iteration count. A Decoder owns
// private, mutable scratch state (the Tanner graph's edge messages, the
// current LLR vector, the hard decision, the candidate syndrome, and —
// for serial schedules — the bit permutation); it is reset on every
// Decode call and must not be shared across concurrent decodes; give each
// worker goroutine its own Decoder.
package bpdecoder
