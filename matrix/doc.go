// Package matrix implements a sparse boolean-semiring matrix kernel: the
// arithmetic substrate every automaton, RSM, and CFPQ solver in this module
// is built on.
//
// A Matrix is built in DOK (dictionary-of-keys) form via New/Set, then
// frozen into a CSR-like read-optimized form for the hot paths (Multiply,
// transitive closure, nonzero iteration). Values live in the boolean
// semiring: addition is logical OR, multiplication is AND-then-OR
// (reachability composition), and there is no notion of weight or
// magnitude — an entry is either present or absent.
//
// Matrices are best suited to the sparse, typically very sparse, adjacency
// structure of formal-language-query graphs: Kronecker products of label
// matrices and RSM-box matrices blow up the state space combinatorially,
// so dense storage is never an option here.
package matrix
