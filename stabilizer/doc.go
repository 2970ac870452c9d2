// Package stabilizer implements stabilizer groups: ordered lists of
// pairwise-commuting, linearly independent Pauli generators on a common
// qubit count n.
//
// A Group of r generators has size 2^r; Element maps an index k in
// [0, 2^r) to the Pauli product of the generators whose bit is set in k,
// with phase tracked correctly, and Iterator walks every element exactly
// once, restartable via Reset.
package stabilizer
