package sparsebin

import "errors"

// Sentinel errors for sparsebin package operations. All indicate
// programmer errors: callers are expected to treat them as fatal.
var (
	// ErrInvalidDimensions indicates non-positive R or C was requested.
	ErrInvalidDimensions = errors.New("sparsebin: dimensions must be > 0")

	// ErrIndexOutOfRange indicates an adjacency entry referenced a row or
	// column index outside the matrix's declared shape.
	ErrIndexOutOfRange = errors.New("sparsebin: index out of range")

	// ErrInconsistentAdjacency indicates row_adj and col_adj disagree about
	// which entries are set.
	ErrInconsistentAdjacency = errors.New("sparsebin: row and column adjacency disagree")

	// ErrShapeMismatch indicates operand dimensions are incompatible for the
	// requested operation (vector/matrix product).
	ErrShapeMismatch = errors.New("sparsebin: shape mismatch")
)
