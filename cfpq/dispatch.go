// SPDX-License-Identifier: MIT
// dispatch.go - Solve: thin dispatcher over the three CFPQ solvers (spec's
// supplemented CFPQAlgorithm enum), matching query's public entry points.
package cfpq

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/core"
	"github.com/rudolf101/formal-lang-go/grammar"
)

// Solve answers a CFPQ over g using cfg via the solver named by alg.
func Solve(alg Algorithm, g *core.Graph, cfg *grammar.CFG, opts ...Option) (*Result, error) {
	switch alg {
	case HELLINGS:
		return Hellings(g, cfg, opts...)
	case MATRIX:
		return Matrix(g, cfg, opts...)
	case TENSOR:
		return Tensor(g, cfg, opts...)
	default:
		return nil, fmt.Errorf("cfpq: Solve: %w", ErrUnknownAlgorithm)
	}
}
