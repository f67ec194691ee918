// SPDX-License-Identifier: MIT
// Package query is the thin public facade over the RPQ and CFPQ engines,
// matching spec.md §6's three public operations (rpq_tensor, rpq_bfs,
// cfpq) and grounded on project/rpq.py/project/cfpq.py's top-level
// entry points: a query call just resolves a tagged enum and forwards to
// the matching solver package. It performs no computation of its own.
package query
