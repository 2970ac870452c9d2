package csscode

import "errors"

// Sentinel errors for csscode package operations.
var (
	// ErrLengthMismatch indicates an ErrorPattern's x_bits and z_bits have
	// different lengths.
	ErrLengthMismatch = errors.New("csscode: x_bits/z_bits length mismatch")

	// ErrColumnMismatch indicates H_X and H_Z were given different column
	// counts (they must share a qubit count n).
	ErrColumnMismatch = errors.New("csscode: H_X and H_Z column counts differ")

	// ErrNotOrthogonal indicates H_X * H_Z^T != 0 over GF(2).
	ErrNotOrthogonal = errors.New("csscode: H_X and H_Z are not orthogonal")

	// ErrNonPositiveK indicates n - rank(H_X) - rank(H_Z) <= 0: the code
	// encodes no logical qubits.
	ErrNonPositiveK = errors.New("csscode: code has no logical qubits (k <= 0)")

	// ErrShapeMismatch indicates an ErrorPattern's length disagrees with the
	// code's qubit count in a ComputeSyndrome call.
	ErrShapeMismatch = errors.New("csscode: error pattern length disagrees with code qubit count")
)
