// SPDX-License-Identifier: MIT
// errors.go - sentinel errors for the rpq package.
package rpq

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("rpq: nil graph")

	// ErrEmptyPattern indicates an empty regular-expression pattern.
	ErrEmptyPattern = errors.New("rpq: empty pattern")

	// ErrUnknownVertex indicates a requested source/target vertex ID is
	// absent from the graph.
	ErrUnknownVertex = errors.New("rpq: unknown vertex")
)
