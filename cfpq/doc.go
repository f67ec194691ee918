// SPDX-License-Identifier: MIT
// Package cfpq implements component H/I/J of the specification: three
// independent solvers for context-free path queries over a core.Graph,
// all agreeing on the same output for the same (graph, grammar) pair.
//
// What & Why:
//
//	Hellings (hellings.go) is a worklist fixed point over derived triples
//	(u, A, v). Matrix (matrix_solver.go) allocates one |V|×|V| boolean
//	matrix per nonterminal and iterates M[A] += M[B]·M[C] to a fixed
//	point. Tensor (tensor.go) builds a Recursive State Machine from the
//	grammar's ECFG and repeatedly intersects it with the (growing) graph
//	bundle, reading new per-nonterminal reachability off the product's
//	transitive closure. The three solvers trade worklist-vs-matrix
//	granularity and are grounded on project/cfpq.py (original source),
//	which implements exactly this trio.
package cfpq
