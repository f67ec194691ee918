// SPDX-License-Identifier: MIT
// graph_adapter.go - component C: interprets a core.Graph as an NFA whose
// transitions carry each edge's Label (empty label = epsilon), with
// configurable start/final sets defaulting to "every vertex" per spec §4.C.
//
// The adapter does not perform ε-closure itself: ε is stored as a real
// symbol in the resulting Bundle, which is correct for the BFS solver
// (paths may traverse ε freely) and for the tensor solver as long as the
// query side has no ε symbol of its own (spec §4.C, §9 open question 3).

package automaton

import "github.com/rudolf101/formal-lang-go/core"

// GraphToNFA interprets g as an NFA: every core.Vertex ID becomes a State,
// every core.Edge becomes a Symbol-labeled Transition (an empty Edge.Label
// becomes the epsilon symbol ""), and start/final default to every vertex
// when the corresponding set is nil.
func GraphToNFA(g *core.Graph, start, final []string) *NFA {
	n := NewNFA()
	if g == nil {
		return n
	}

	vertices := g.Vertices()
	for _, v := range vertices {
		n.AddState(v)
	}
	for _, e := range g.Edges() {
		n.AddTransition(e.From, e.Label, e.To)
	}

	if start == nil {
		start = vertices
	}
	for _, s := range start {
		n.MarkStart(s)
	}

	if final == nil {
		final = vertices
	}
	for _, f := range final {
		n.MarkFinal(f)
	}

	return n
}

// GraphToEpsilonNFA is GraphToNFA followed by FromNFA, producing the Bundle
// form every RPQ/CFPQ solver consumes directly.
func GraphToEpsilonNFA(g *core.Graph, start, final []string) (*Bundle, error) {
	return FromNFA(GraphToNFA(g, start, final))
}
