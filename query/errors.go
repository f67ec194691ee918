// SPDX-License-Identifier: MIT
// errors.go - sentinel errors for the query facade itself. Solver-level
// errors (rpq.ErrNilGraph, cfpq.ErrUnknownAlgorithm, ...) propagate
// unwrapped from the underlying package.
package query

import "errors"

// ErrInvalidStartSymbol indicates a requested grammar start symbol that
// does not appear among the grammar's nonterminals (spec §7).
var ErrInvalidStartSymbol = errors.New("query: invalid start symbol")
