// SPDX-License-Identifier: MIT
// errors.go - sentinel errors for the cfpq package.
package cfpq

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("cfpq: nil graph")

	// ErrNilGrammar indicates a nil *grammar.CFG argument.
	ErrNilGrammar = errors.New("cfpq: nil grammar")

	// ErrUnknownVertex indicates a requested source/target vertex ID is
	// absent from the graph.
	ErrUnknownVertex = errors.New("cfpq: unknown vertex")

	// ErrUnknownAlgorithm indicates an Algorithm value outside
	// {HELLINGS, MATRIX, TENSOR}.
	ErrUnknownAlgorithm = errors.New("cfpq: unknown algorithm")
)
