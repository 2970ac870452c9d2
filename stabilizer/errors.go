package stabilizer

import "errors"

// Sentinel errors for stabilizer package operations.
var (
	// ErrNoGenerators indicates New was called with zero generators.
	ErrNoGenerators = errors.New("stabilizer: at least one generator is required")

	// ErrQubitCountMismatch indicates the supplied generators disagree on
	// qubit count.
	ErrQubitCountMismatch = errors.New("stabilizer: generators disagree on qubit count")

	// ErrNonCommuting indicates two supplied generators anticommute.
	ErrNonCommuting = errors.New("stabilizer: generators do not pairwise commute")

	// ErrLinearlyDependent indicates the supplied generators' symplectic
	// vectors are linearly dependent over GF(2).
	ErrLinearlyDependent = errors.New("stabilizer: generators are linearly dependent")

	// ErrIndexOutOfRange indicates Element was called with an index outside
	// [0, Size()).
	ErrIndexOutOfRange = errors.New("stabilizer: element index out of range")
)
