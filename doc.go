// Package qldpcsim is the simulation core for quantum low-density
// parity-check (qLDPC) error correction.
//
// Given a CSS quantum code (a pair of binary parity-check matrices) and a
// Pauli noise channel, the core samples error patterns, computes their
// syndromes, and decodes them with an iterative belief-propagation decoder
// running on the Tanner graph of each check matrix.
//
// Every call is synchronous, and everything except cssdecoder's Decode is
// single-threaded (that one runs its X and Z halves on two goroutines and
// waits for both); codes,
// matrices, and channels are immutable after construction and safe to share
// by reference across goroutines, while each BpDecoder owns private,
// mutable scratch state and must not be shared across concurrent decodes.
//
// The module is organized bottom-up, leaves first:
//
//	bitvec/     — fixed-length, word-packed GF(2) bit vectors
//	sparsebin/  — adjacency-list sparse GF(2) matrices (mul, transpose, rank)
//	symplectic/ — Pauli operators in binary symplectic form
//	stabilizer/ — commuting, independent Pauli generator groups
//	csscode/    — CSS codes, error patterns, and syndromes
//	errchannel/ — Pauli error samplers (bit-flip, depolarizing)
//	tanner/     — per-edge message store for a parity-check matrix
//	bpdecoder/  — the binary belief-propagation decoder
//	cssdecoder/ — the CSS wrapper running two BpDecoders and recombining them
//	simulate/   — a single-shot worked example tying the above together
//
// A CLI entry point, parallel sample dispatch, random-number generation,
// result printing, and code serialization are deliberately left to callers:
// this module is the decoding core, not the simulation harness around it.
package qldpcsim
