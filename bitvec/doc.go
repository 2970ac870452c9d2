// Package bitvec provides a fixed-length, word-packed bit vector over GF(2).
//
// A BitVector's length is fixed at construction. It supports indexed
// get/set, in-place XOR, population count, and equality — the primitive
// every other package in this module builds on. Storage is packed into
// 64-bit words. BitVector carries no shared mutable state of its own and
// holds no lock; callers sharing a single instance across goroutines must
// synchronize externally.
package bitvec
