// SPDX-License-Identifier: MIT
// query.go - the three public operations named in spec.md §6, each a thin
// dispatcher translating plain start/final vertex lists into the
// underlying solver package's functional options.
package query

import (
	"github.com/rudolf101/formal-lang-go/cfpq"
	"github.com/rudolf101/formal-lang-go/core"
	"github.com/rudolf101/formal-lang-go/grammar"
	"github.com/rudolf101/formal-lang-go/rpq"
)

// RPQTensor answers rpq_tensor(graph, regex, start?, final?): a regular
// path query solved by intersecting the query DFA with g's ε-NFA bundle.
// A non-empty start restricts sources (PerSource mode); an empty start
// leaves every vertex eligible (AllReachable mode).
func RPQTensor(g *core.Graph, regex string, start, final []string) (*rpq.Result, error) {
	var opts []rpq.Option
	if len(start) > 0 {
		opts = append(opts, rpq.WithMode(rpq.PerSource), rpq.WithSources(start...))
	}
	if len(final) > 0 {
		opts = append(opts, rpq.WithTargets(final...))
	}
	return rpq.Tensor(g, regex, opts...)
}

// RPQBFS answers rpq_bfs(graph, regex, mode, start?, final?) via the
// synchronous multi-source BFS solver.
func RPQBFS(g *core.Graph, regex string, mode rpq.Mode, start, final []string) (*rpq.Result, error) {
	opts := []rpq.Option{rpq.WithMode(mode)}
	if len(start) > 0 {
		opts = append(opts, rpq.WithSources(start...))
	}
	if len(final) > 0 {
		opts = append(opts, rpq.WithTargets(final...))
	}
	return rpq.BFS(g, regex, opts...)
}

// CFPQ answers cfpq(algorithm, graph, cfg, start?, final?, start_symbol)
// via the solver named by alg. An empty startSymbol keeps cfg.Start; a
// non-empty one overrides it, and must already name one of cfg's
// nonterminals (spec §7's InvalidStartSymbol).
func CFPQ(alg cfpq.Algorithm, g *core.Graph, cfg *grammar.CFG, start, final []string, startSymbol string) (*cfpq.Result, error) {
	if cfg != nil && startSymbol != "" && startSymbol != cfg.Start {
		if _, ok := cfg.Nonterminals[startSymbol]; !ok {
			return nil, ErrInvalidStartSymbol
		}
		overridden := *cfg
		overridden.Start = startSymbol
		cfg = &overridden
	}

	var opts []cfpq.Option
	if len(start) > 0 {
		opts = append(opts, cfpq.WithSources(start...))
	}
	if len(final) > 0 {
		opts = append(opts, cfpq.WithTargets(final...))
	}
	return cfpq.Solve(alg, g, cfg, opts...)
}
