// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_labeled_chain.go - implementation of the LabeledChain(labels)
// constructor: a simple directed path with one alphabet symbol per edge,
// the fixture used by the BFS per-source RPQ scenarios.
//
// Contract:
//   - len(labels) >= 1 (else ErrTooFewVertices).
//   - Adds len(labels)+1 vertices via cfg.idFn in ascending index order.
//   - Emits edge i -> i+1 labeled labels[i], for i=0..len(labels)-1.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(len(labels)) vertices + edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order by increasing i.
package builder

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/core"
)

const (
	methodLabeledChain = "LabeledChain"
	minChainLabels     = 1
)

// LabeledChain returns a Constructor that builds a straight path of
// len(labels)+1 vertices, where edge i is labeled labels[i]. Passing
// []string{"a","b","b","a","b","b","a","b","b"} reproduces the "abbabbabb"
// chain used to probe per-source reachability.
func LabeledChain(labels []string) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if len(labels) < minChainLabels {
			return fmt.Errorf("%s: len(labels)=%d < min=%d: %w", methodLabeledChain, len(labels), minChainLabels, ErrTooFewVertices)
		}

		n := len(labels) + 1
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodLabeledChain, id, err)
			}
		}

		for i, label := range labels {
			uID := cfg.idFn(i)
			vID := cfg.idFn(i + 1)
			if _, err := g.AddEdge(uID, vID, label); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s->%s): %w", methodLabeledChain, label, uID, vID, err)
			}
		}

		return nil
	}
}
