// Package symplectic implements Pauli operators in binary symplectic form.
//
// A Pauli on n qubits is the triple (phase, x_bits, z_bits), phase in
// {+1, +i, -1, -i} and x_bits/z_bits length-n GF(2) vectors; position i
// encodes (x=0,z=0)->I, (x=1,z=0)->X, (x=0,z=1)->Z, (x=1,z=1)->Y. Product,
// commutation testing, and text parsing all live here — everything the
// stabilizer and CSS layers need that does not require tracking a whole
// generator set.
package symplectic
