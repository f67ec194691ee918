// Package automaton represents finite automata as bundles of boolean
// matrices — one matrix per alphabet symbol, plus a dense state↔index map
// and start/final state sets — so that the matrix package's Kronecker
// product and transitive closure double as automaton intersection and
// language-reachability closure.
//
// A Bundle never mutates once built: intersect and direct-sum both return a
// fresh Bundle, matching the read-only-bundle contract every RPQ and CFPQ
// solver in this module relies on.
package automaton
