// SPDX-License-Identifier: MIT
// bfs.go - the BFS RPQ solver (spec §4.F): synchronous multi-source
// frontier stepping over a query⊕graph direct-sum matrix, grounded on
// project/rpq.py's rpq_bfs(graph, query, start_vertices, ...).
//
// Front encoding: the query DFA has m states and the graph NFA has n
// states; the front has m rows per source vertex (one block of m rows
// per source), and m+n columns. Row r within a block represents "the
// search is currently at query state r"; its first m columns carry that
// state's identity (front[r,r]=1) and its last n columns are the bitmask
// of graph vertices co-occupying that configuration.
//
// Stepping multiplies the front by a shared per-symbol matrix of D =
// Q ⊕ G (automaton.DirectSum), then re-buckets every row of the product:
// a nonzero (i,j) with j<m means row i's query side just landed on state
// j, so its graph-side bits are relocated to row row_shift+j (row_shift
// keeping i's block), with the identity cell (row_shift+j, j) set. This
// re-bucketing is what keeps the query state and the graph vertices it
// co-occupies paired through the symbol that actually licensed the move
// on both sides at once (spec §4.F); without it the query and graph
// halves of a row would each saturate independently and the result would
// be plain label-agnostic graph reachability gated by "query reaches a
// final state at all", not a regular path query.
package rpq

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/automaton"
	"github.com/rudolf101/formal-lang-go/core"
	"github.com/rudolf101/formal-lang-go/internal/regexdfa"
	"github.com/rudolf101/formal-lang-go/matrix"
)

// BFS answers a regular path query over g using pattern by synchronous
// multi-source frontier stepping, rather than Tensor's single large
// closure. It is the cheaper solver when only a handful of source vertices
// matter (WithMode(PerSource)).
func BFS(g *core.Graph, pattern string, opts ...Option) (*Result, error) {
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
		return nil, fmt.Errorf("rpq: BFS: %w", err)
	}
	queryBundle, err := automaton.FromNFA(queryNFA)
	if err != nil {
		return nil, fmt.Errorf("rpq: BFS: %w", err)
	}
	graphBundle, err := automaton.GraphToEpsilonNFA(g, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("rpq: BFS: %w", err)
	}

	db, err := automaton.DirectSum(queryBundle, graphBundle)
	if err != nil {
		return nil, fmt.Errorf("rpq: BFS: %w", err)
	}
	m, n := queryBundle.N(), graphBundle.N()
	total := m + n

	var sources []string
	if sourceSet != nil {
		for id := range sourceSet {
			sources = append(sources, id)
		}
	} else {
		sources = g.Vertices()
	}

	queryStart := -1
	for i := 0; i < m; i++ {
		if queryBundle.IsStart(i) {
			queryStart = i
			break
		}
	}
	if queryStart < 0 || len(sources) == 0 {
		return &Result{}, nil
	}

	nRows := len(sources) * m
	front, err := matrix.New(nRows, total)
	if err != nil {
		return nil, fmt.Errorf("rpq: BFS: %w", err)
	}
	blockOf := make(map[string]int, len(sources))
	for b, u := range sources {
		blockOf[u] = b
		uIdx, err := graphBundle.IndexOf(u)
		if err != nil {
			return nil, fmt.Errorf("rpq: BFS: %w", err)
		}
		row := b*m + queryStart
		if err := front.Set(row, queryStart); err != nil {
			return nil, fmt.Errorf("rpq: BFS: %w", err)
		}
		if err := front.Set(row, m+uIdx); err != nil {
			return nil, fmt.Errorf("rpq: BFS: %w", err)
		}
	}
	frontFrozen := front.Freeze()

	symbols := db.Symbols()
	for {
		next := frontFrozen
		for _, sym := range symbols {
			dsym := db.Matrix(sym)
			if dsym == nil {
				continue
			}
			stepped, err := matrix.Multiply(frontFrozen, dsym)
			if err != nil {
				return nil, fmt.Errorf("rpq: BFS: %w", err)
			}
			relocated, err := rebucket(stepped, m, nRows, total)
			if err != nil {
				return nil, fmt.Errorf("rpq: BFS: %w", err)
			}
			next, err = matrix.Add(next, relocated)
			if err != nil {
				return nil, fmt.Errorf("rpq: BFS: %w", err)
			}
		}
		if matrix.Equal(next, frontFrozen) {
			frontFrozen = next
			break
		}
		frontFrozen = next
	}

	res := &Result{}
	for _, u := range sources {
		b := blockOf[u]
		for q := 0; q < m; q++ {
			if !queryBundle.IsFinal(q) {
				continue
			}
			row := b*m + q
			cols, err := frontFrozen.RowCols(row)
			if err != nil {
				return nil, fmt.Errorf("rpq: BFS: %w", err)
			}
			for _, c := range cols {
				if c < m {
					continue
				}
				gi := c - m
				v, ok := graphBundle.StateAt(gi).(string)
				if !ok || !graphBundle.IsFinal(gi) || !o.allowsTarget(v) {
					continue
				}
				res.Pairs = append(res.Pairs, Pair{From: u, To: v})
			}
		}
	}

	return res, nil
}

// rebucket re-homes every row of a stepped front (spec §4.F's "row_shift"
// rule): for each nonzero (i,j) with j<m (a query-side landing), the
// graph-side bits of row i move to row (i div m)*m+j, alongside the
// identity cell (row_shift+j, j). Rows of stepped with no query-side bit
// set contribute nothing (a symbol that only moved the graph side without
// a matching query transition can never re-pair with a query state).
func rebucket(stepped *matrix.Matrix, m, nRows, total int) (*matrix.Matrix, error) {
	out, err := matrix.New(nRows, total)
	if err != nil {
		return nil, err
	}

	var setErr error
	stepped.Each(func(i, j int) {
		if setErr != nil || j >= m {
			return
		}
		rowShift := (i / m) * m
		destRow := rowShift + j
		if err := out.Set(destRow, j); err != nil {
			setErr = err
			return
		}
		cols, err := stepped.RowCols(i)
		if err != nil {
			setErr = err
			return
		}
		for _, c := range cols {
			if c < m {
				continue
			}
			if err := out.Set(destRow, c); err != nil {
				setErr = err
				return
			}
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	return out.Freeze(), nil
}
