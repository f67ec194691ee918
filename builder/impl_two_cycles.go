// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_two_cycles.go — implementation of the TwoCycles(n1, n2, label1, label2)
// constructor: two labeled cycles sharing a single common vertex, the fixture
// used throughout the RPQ/CFPQ test suites and examples.
//
// Contract:
//   - n1 >= 1 and n2 >= 1 (else ErrTooFewVertices); each ni is the number of
//     edges in its cycle.
//   - Vertex 0 (cfg.idFn(0)) is shared by both cycles.
//   - First cycle: 0 -> 1 -> ... -> n1 -> 0, every edge labeled label1.
//   - Second cycle also starts and ends at vertex 0 and continues the index
//     space so its interior vertices never collide with the first cycle's:
//     0 -> n1+1 -> ... -> n1+n2 -> 0, every edge labeled label2.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n1+n2) vertices and edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order: first cycle in full, then second.
package builder

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/core"
)

const (
	methodTwoCycles = "TwoCycles"
	minCycleEdges   = 1
)

// TwoCycles returns a Constructor that builds two directed cycles of n1 and
// n2 edges respectively, sharing vertex 0, with every edge of the first
// cycle labeled label1 and every edge of the second labeled label2.
//
// This is the canonical "bowtie" graph used to exercise both the RPQ Tensor
// and multi-source BFS solvers: querying the regex "label1* label2*" from
// vertex 0 reaches every vertex in the graph.
func TwoCycles(n1, n2 int, label1, label2 string) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n1 < minCycleEdges {
			return fmt.Errorf("%s: n1=%d < min=%d: %w", methodTwoCycles, n1, minCycleEdges, ErrTooFewVertices)
		}
		if n2 < minCycleEdges {
			return fmt.Errorf("%s: n2=%d < min=%d: %w", methodTwoCycles, n2, minCycleEdges, ErrTooFewVertices)
		}

		hub := cfg.idFn(0)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodTwoCycles, hub, err)
		}

		// First cycle: hub -> 1 -> 2 -> ... -> n1 -> hub, labeled label1.
		prev := hub
		for i := 1; i <= n1; i++ {
			cur := cfg.idFn(i)
			if err := g.AddVertex(cur); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodTwoCycles, cur, err)
			}
			if _, err := g.AddEdge(prev, cur, label1); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s->%s): %w", methodTwoCycles, label1, prev, cur, err)
			}
			prev = cur
		}
		if _, err := g.AddEdge(prev, hub, label1); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s->%s): %w", methodTwoCycles, label1, prev, hub, err)
		}

		// Second cycle: hub -> n1+1 -> ... -> n1+n2 -> hub, labeled label2.
		prev = hub
		for i := 1; i <= n2; i++ {
			cur := cfg.idFn(n1 + i)
			if err := g.AddVertex(cur); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodTwoCycles, cur, err)
			}
			if _, err := g.AddEdge(prev, cur, label2); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s->%s): %w", methodTwoCycles, label2, prev, cur, err)
			}
			prev = cur
		}
		if _, err := g.AddEdge(prev, hub, label2); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s->%s): %w", methodTwoCycles, label2, prev, hub, err)
		}

		return nil
	}
}
