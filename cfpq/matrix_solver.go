// SPDX-License-Identifier: MIT
// matrix_solver.go - the Matrix CFPQ solver (spec §4.I): one |V|×|V|
// boolean matrix per nonterminal, iterated to a fixed point, grounded on
// project/cfpq.py's cfpq_matrix(graph, cfg).
package cfpq

import (
	"fmt"
	"sort"

	"github.com/rudolf101/formal-lang-go/core"
	"github.com/rudolf101/formal-lang-go/grammar"
	"github.com/rudolf101/formal-lang-go/matrix"
)

// Matrix answers a CFPQ over g using cfg's start-symbol reachability by
// the per-nonterminal matrix fixed point of spec §4.I.
func Matrix(g *core.Graph, cfg *grammar.CFG, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg == nil {
		return nil, ErrNilGrammar
	}
	o := buildOptions(opts...)

	w, err := grammar.NormalizeWCNF(cfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq: Matrix: %w", err)
	}

	vertices := g.Vertices()
	n := len(vertices)
	idx := make(map[string]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	mats := make(map[string]*matrix.Matrix, len(w.Nonterminals))
	newBuilder := func() (*matrix.Matrix, error) {
		return matrix.New(n, n)
	}

	for nt := range w.Nonterminals {
		mats[nt], err = newBuilder()
		if err != nil {
			return nil, fmt.Errorf("cfpq: Matrix: %w", err)
		}
	}
	for nt := range w.Nullable {
		for i := 0; i < n; i++ {
			if err := mats[nt].Set(i, i); err != nil {
				return nil, fmt.Errorf("cfpq: Matrix: %w", err)
			}
		}
	}
	for _, e := range g.Edges() {
		u, uok := idx[e.From]
		v, vok := idx[e.To]
		if !uok || !vok {
			continue
		}
		for nt, terms := range w.TermProds {
			if _, ok := terms[e.Label]; !ok {
				continue
			}
			if err := mats[nt].Set(u, v); err != nil {
				return nil, fmt.Errorf("cfpq: Matrix: %w", err)
			}
		}
	}
	for nt := range mats {
		mats[nt] = mats[nt].Freeze()
	}

	heads := make([]string, 0, len(w.BinaryProds))
	for head := range w.BinaryProds {
		heads = append(heads, head)
	}
	sort.Strings(heads)

	for {
		changed := false
		for _, head := range heads {
			acc := mats[head]
			for pair := range w.BinaryProds[head] {
				prod, err := matrix.Multiply(mats[pair[0]], mats[pair[1]])
				if err != nil {
					return nil, fmt.Errorf("cfpq: Matrix: %w", err)
				}
				next, err := matrix.Add(acc, prod)
				if err != nil {
					return nil, fmt.Errorf("cfpq: Matrix: %w", err)
				}
				if next.NNZ() != acc.NNZ() {
					changed = true
				}
				acc = next
			}
			mats[head] = acc
		}
		if !changed {
			break
		}
	}

	start, ok := mats[w.Start]
	if !ok {
		return &Result{}, nil
	}

	res := &Result{}
	start.Each(func(i, j int) {
		from, to := vertices[i], vertices[j]
		if o.allows(from, to) {
			res.Pairs = append(res.Pairs, Pair{From: from, To: to})
		}
	})

	return res, nil
}
