// SPDX-License-Identifier: MIT
// hellings.go - the Hellings CFPQ solver (spec §4.H): a worklist fixed
// point over derived triples (u, A, v), grounded on project/cfpq.py's
// cfpq_hellings(graph, cfg).
//
// Each popped triple (u, A, v) is completed against the current relation
// by scanning two small per-vertex indices (triples ending at u, triples
// starting at v) rather than the whole relation. Newly derived triples are
// collected into a per-step delta and only merged into the relation and
// indices once the scan of the popped triple is done (spec §9 open
// question 2): committing mid-scan would risk the index slices growing
// while still being ranged over, most visibly when u == v.
package cfpq

import (
	"fmt"
	"sort"

	"github.com/rudolf101/formal-lang-go/core"
	"github.com/rudolf101/formal-lang-go/grammar"
)

type triple struct {
	U, A, V string
}

type endpoint struct {
	other string
	nt    string
}

// Hellings answers a CFPQ over g using cfg's start-symbol reachability by
// the worklist construction of spec §4.H.
func Hellings(g *core.Graph, cfg *grammar.CFG, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg == nil {
		return nil, ErrNilGrammar
	}
	o := buildOptions(opts...)

	w, err := grammar.NormalizeWCNF(cfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq: Hellings: %w", err)
	}

	ntForTerminal := make(map[string][]string)
	for nt, terms := range w.TermProds {
		for t := range terms {
			ntForTerminal[t] = append(ntForTerminal[t], nt)
		}
	}
	binaryByTail := make(map[[2]string][]string) // (B,A) -> [X : X->BA]
	for head, pairs := range w.BinaryProds {
		for pair := range pairs {
			binaryByTail[pair] = append(binaryByTail[pair], head)
		}
	}

	seen := make(map[triple]struct{})
	byTo := make(map[string][]endpoint)   // v -> (w, B) such that (w,B,v) in R
	byFrom := make(map[string][]endpoint) // u -> (C, w) such that (u,C,w) in R
	var worklist []triple

	add := func(t triple) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		byTo[t.V] = append(byTo[t.V], endpoint{other: t.U, nt: t.A})
		byFrom[t.U] = append(byFrom[t.U], endpoint{other: t.V, nt: t.A})
		worklist = append(worklist, t)
	}

	for _, v := range g.Vertices() {
		for a := range w.Nullable {
			add(triple{U: v, A: a, V: v})
		}
	}
	for _, e := range g.Edges() {
		for _, nt := range ntForTerminal[e.Label] {
			add(triple{U: e.From, A: nt, V: e.To})
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		var delta []triple

		// (w, B, u) for u = cur.U: X -> B A, derive (w, X, cur.V).
		for _, ep := range byTo[cur.U] {
			for _, x := range binaryByTail[[2]string{ep.nt, cur.A}] {
				delta = append(delta, triple{U: ep.other, A: x, V: cur.V})
			}
		}
		// (v, C, w) for v = cur.V: X -> A C, derive (cur.U, X, w).
		for _, ep := range byFrom[cur.V] {
			for _, x := range binaryByTail[[2]string{cur.A, ep.nt}] {
				delta = append(delta, triple{U: cur.U, A: x, V: ep.other})
			}
		}

		for _, t := range delta {
			add(t)
		}
	}

	res := &Result{}
	var pairs []Pair
	for t := range seen {
		if t.A != w.Start {
			continue
		}
		if !o.allows(t.U, t.V) {
			continue
		}
		pairs = append(pairs, Pair{From: t.U, To: t.V})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	res.Pairs = pairs

	return res, nil
}
