// SPDX-License-Identifier: MIT
// Package rpq implements component E/F of the specification: regular path
// queries over a core.Graph, answered by two independent solvers sharing
// the same automaton/matrix primitives.
//
// What & Why:
//
//	Tensor (tensor.go) builds the query automaton (internal/regexdfa.Compile
//	over the RPQ pattern) and the graph's ε-NFA bundle (automaton.Bundle),
//	takes their Kronecker product (automaton.Intersect), and reads off
//	reachable vertex pairs from the product's (non-reflexive) transitive closure.
//	BFS (bfs.go) instead packs query ⊕ graph into one direct-sum matrix and
//	walks a synchronous multi-source frontier, trading the Tensor solver's
//	one large closure for an explicit fixed-point loop that is usually
//	cheaper when only a handful of source vertices matter (Mode PerSource).
//
// Grounded on project/rpq.py (original source) for the solver split and
// the exact source/target semantics of AllReachable vs. PerSource.
package rpq
