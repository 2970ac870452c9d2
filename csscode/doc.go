// Package csscode implements CSS quantum codes and the error/syndrome
// algebra around them.
//
// A CssCode owns a pair (H_X, H_Z) of binary parity-check matrices sharing
// a column count n, subject to H_X * H_Z^T = 0 over GF(2) and k :=
// n - rank(H_X) - rank(H_Z) > 0. An ErrorPattern is a pair of length-n bit
// vectors (x_bits, z_bits); its Syndrome under a code is (H_Z*x_bits,
// H_X*z_bits) — the pair that detects X- and Z-type errors respectively.
package csscode
