// Package errchannel samples Pauli error patterns from a noise model.
//
// A Channel samples independent per-qubit errors as an (x_bits, z_bits)
// pair: BitFlip flips X with a fixed probability per qubit, Depolarizing
// chooses among {I, X, Y, Z} with weights {1-p, p/3, p/3, p/3}. Every
// Sample/SampleBatch call takes an injected *rand.Rand rather than owning
// a generation strategy, so callers control seeding and reproducibility.
package errchannel
