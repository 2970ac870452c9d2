package symplectic

import "errors"

// Sentinel errors for symplectic package operations.
var (
	// ErrLengthMismatch indicates x_bits/z_bits do not both have length n.
	ErrLengthMismatch = errors.New("symplectic: bit-vector length mismatch")

	// ErrShapeMismatch indicates two Paulis with different qubit counts were
	// combined (Product, Commutes).
	ErrShapeMismatch = errors.New("symplectic: qubit count mismatch")

	// ErrInvalidPauliString indicates a character outside {+,-,i,I,X,Y,Z}
	// appeared where it is not allowed, or the string was otherwise malformed.
	ErrInvalidPauliString = errors.New("symplectic: invalid Pauli string")
)
