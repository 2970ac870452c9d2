package bitvec

import "errors"

// Sentinel errors for bitvec package operations.
var (
	// ErrNegativeLength indicates a negative length was requested for a new BitVector.
	ErrNegativeLength = errors.New("bitvec: length must be non-negative")

	// ErrOutOfRange indicates an index outside [0, Len()) was used with Get/Set.
	ErrOutOfRange = errors.New("bitvec: index out of range")

	// ErrLengthMismatch indicates two BitVectors of different lengths were
	// used in an operation that requires equal length (Xor). Equal does
	// not return it: vectors of different lengths are simply unequal.
	ErrLengthMismatch = errors.New("bitvec: length mismatch")

	// ErrInvalidBit indicates a byte outside {0, 1} was passed to FromBytes.
	ErrInvalidBit = errors.New("bitvec: bit value must be 0 or 1")
)
