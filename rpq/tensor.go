// SPDX-License-Identifier: MIT
// tensor.go - the Tensor RPQ solver (spec §4.E): product automaton plus one
// transitive closure, grounded on project/rpq.py's rpq_tensor(graph, query).
package rpq

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/automaton"
	"github.com/rudolf101/formal-lang-go/core"
	"github.com/rudolf101/formal-lang-go/internal/regexdfa"
	"github.com/rudolf101/formal-lang-go/matrix"
)

// Tensor answers a regular path query over g using pattern, by taking the
// Kronecker product of the query automaton and g's ε-NFA bundle and reading
// reachable vertex pairs off the product's transitive closure. The closure
// is deliberately non-reflexive (spec §4.A/§4.E): a pair (u,u) is only
// reported when an actual nonzero-length path spells a word of L(pattern),
// not merely because the query accepts the empty string at every vertex.
func Tensor(g *core.Graph, pattern string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	o := buildOptions(opts...)

	sourceSet, err := sourceFilter(g, o)
	if err != nil {
		return nil, err
	}

	queryNFA, err := regexdfa.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rpq: Tensor: %w", err)
	}
	queryBundle, err := automaton.FromNFA(queryNFA)
	if err != nil {
		return nil, fmt.Errorf("rpq: Tensor: %w", err)
	}

	graphBundle, err := automaton.GraphToEpsilonNFA(g, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("rpq: Tensor: %w", err)
	}

	prod, err := automaton.Intersect(queryBundle, graphBundle)
	if err != nil {
		return nil, fmt.Errorf("rpq: Tensor: %w", err)
	}

	sum, err := prod.SumMatrix()
	if err != nil {
		return nil, fmt.Errorf("rpq: Tensor: %w", err)
	}
	closure, err := matrix.TransitiveClosure(sum)
	if err != nil {
		return nil, fmt.Errorf("rpq: Tensor: %w", err)
	}

	nGraph := graphBundle.N()
	res := &Result{}
	for i := 0; i < prod.N(); i++ {
		if !prod.IsStart(i) {
			continue
		}
		_, uIdx := automaton.DecodeProductIndex(nGraph, i)
		u, ok := graphBundle.StateAt(uIdx).(string)
		if !ok {
			continue
		}
		if sourceSet != nil {
			if _, want := sourceSet[u]; !want {
				continue
			}
		}

		cols, err := closure.RowCols(i)
		if err != nil {
			return nil, fmt.Errorf("rpq: Tensor: %w", err)
		}
		for _, j := range cols {
			if !prod.IsFinal(j) {
				continue
			}
			_, vIdx := automaton.DecodeProductIndex(nGraph, j)
			v, ok := graphBundle.StateAt(vIdx).(string)
			if !ok || !o.allowsTarget(v) {
				continue
			}
			res.Pairs = append(res.Pairs, Pair{From: u, To: v})
		}
	}

	return res, nil
}

// sourceFilter returns nil (no filtering) in AllReachable mode, or the set
// of requested source vertices in PerSource mode, validating each exists.
func sourceFilter(g *core.Graph, o Options) (map[string]struct{}, error) {
	if o.mode != PerSource {
		return nil, nil
	}
	set := make(map[string]struct{}, len(o.sources))
	for _, id := range o.sources {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("rpq: source %q: %w", id, ErrUnknownVertex)
		}
		set[id] = struct{}{}
	}
	return set, nil
}
