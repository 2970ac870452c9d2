// Package sparsebin implements binary (GF(2)) sparse matrices stored as
// mutually consistent row and column adjacency lists.
//
// A SparseBinMatrix with R rows and C columns keeps row_adj[r], the sorted
// column indices where row r is 1, and col_adj[c], the sorted row indices
// where column c is 1, always in sync: c is in row_adj[r] iff r is in
// col_adj[c]. Operations required by every consumer — vector and matrix
// multiplication, transpose, and GF(2) rank via Gaussian elimination on the
// adjacency lists directly — live here.
//
// Algorithms operate by merging sorted index slices rather than touching a
// dense grid; Rank works on a private copy of the row adjacency.
package sparsebin
