// SPDX-License-Identifier: MIT
// tensor.go - the Tensor CFPQ solver (spec §4.J): repeated RSM⊗graph
// intersection and closure, growing one |V|×|V| matrix per nonterminal
// until a fixed point, grounded on project/cfpq.py's cfpq_tensor(graph, cfg).
package cfpq

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/automaton"
	"github.com/rudolf101/formal-lang-go/core"
	"github.com/rudolf101/formal-lang-go/grammar"
	"github.com/rudolf101/formal-lang-go/matrix"
)

// Tensor answers a CFPQ over g using cfg's start-symbol reachability by the
// RSM-graph intersection fixed point of spec §4.J.
func Tensor(g *core.Graph, cfg *grammar.CFG, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg == nil {
		return nil, ErrNilGrammar
	}
	o := buildOptions(opts...)

	ecfg, err := grammar.FromCFG(cfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq: Tensor: %w", err)
	}
	rsm, err := grammar.FromECFG(ecfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq: Tensor: %w", err)
	}
	rsmBundle, err := rsm.ToBundle()
	if err != nil {
		return nil, fmt.Errorf("cfpq: Tensor: %w", err)
	}

	graphBundle, err := automaton.GraphToEpsilonNFA(g, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("cfpq: Tensor: %w", err)
	}
	n := graphBundle.N()
	states := make([]automaton.State, n)
	for i := 0; i < n; i++ {
		states[i] = graphBundle.StateAt(i)
	}
	terminalMats := make(map[automaton.Symbol]*matrix.Matrix, len(graphBundle.Symbols()))
	for _, sym := range graphBundle.Symbols() {
		terminalMats[sym] = graphBundle.Matrix(sym)
	}

	w, err := grammar.NormalizeWCNF(cfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq: Tensor: %w", err)
	}

	ntMats := make(map[string]*matrix.Matrix, len(w.Nullable))
	for nt := range w.Nullable {
		id, err := matrix.Identity(n)
		if err != nil {
			return nil, fmt.Errorf("cfpq: Tensor: %w", err)
		}
		ntMats[nt] = id
	}

	for {
		merged := make(map[automaton.Symbol]*matrix.Matrix, len(terminalMats)+len(ntMats))
		for sym, m := range terminalMats {
			merged[sym] = m
		}
		for nt, m := range ntMats {
			merged[nt] = m
		}

		graphRound, err := automaton.BundleFromMatrices(states, nil, nil, merged)
		if err != nil {
			return nil, fmt.Errorf("cfpq: Tensor: %w", err)
		}

		prod, err := automaton.Intersect(rsmBundle, graphRound)
		if err != nil {
			return nil, fmt.Errorf("cfpq: Tensor: %w", err)
		}
		sum, err := prod.SumMatrix()
		if err != nil {
			return nil, fmt.Errorf("cfpq: Tensor: %w", err)
		}
		closure, err := matrix.TransitiveClosure(sum)
		if err != nil {
			return nil, fmt.Errorf("cfpq: Tensor: %w", err)
		}

		deltas := make(map[string][][2]int)
		closure.Each(func(i, j int) {
			rsmI, graphI := automaton.DecodeProductIndex(n, i)
			rsmJ, graphJ := automaton.DecodeProductIndex(n, j)
			if !rsmBundle.IsStart(rsmI) || !rsmBundle.IsFinal(rsmJ) {
				return
			}
			rs, ok := rsmBundle.StateAt(rsmI).(grammar.RSMState)
			if !ok {
				return
			}
			deltas[rs.NT] = append(deltas[rs.NT], [2]int{graphI, graphJ})
		})

		changed := false
		for nt, bits := range deltas {
			deltaM, err := matrix.New(n, n)
			if err != nil {
				return nil, fmt.Errorf("cfpq: Tensor: %w", err)
			}
			for _, b := range bits {
				if err := deltaM.Set(b[0], b[1]); err != nil {
					return nil, fmt.Errorf("cfpq: Tensor: %w", err)
				}
			}
			deltaM = deltaM.Freeze()

			old, ok := ntMats[nt]
			if !ok {
				old, err = matrix.New(n, n)
				if err != nil {
					return nil, fmt.Errorf("cfpq: Tensor: %w", err)
				}
				old = old.Freeze()
			}
			next, err := matrix.Add(old, deltaM)
			if err != nil {
				return nil, fmt.Errorf("cfpq: Tensor: %w", err)
			}
			if next.NNZ() != old.NNZ() {
				changed = true
			}
			ntMats[nt] = next
		}

		if !changed {
			break
		}
	}

	res := &Result{}
	startM, ok := ntMats[w.Start]
	if !ok {
		return res, nil
	}
	startM.Each(func(i, j int) {
		u, okU := states[i].(string)
		v, okV := states[j].(string)
		if !okU || !okV {
			return
		}
		if o.allows(u, v) {
			res.Pairs = append(res.Pairs, Pair{From: u, To: v})
		}
	})

	return res, nil
}
