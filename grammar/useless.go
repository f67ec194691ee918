// SPDX-License-Identifier: MIT
// useless.go - removes non-generating and unreachable nonterminals from a
// WCNF, the last step of NormalizeWCNF's pipeline (spec §4.G).
//
// "Reachable from the start symbol" is plain graph reachability, computed
// by building a small core.Graph of nonterminal dependencies (an edge A->B
// for every B mentioned in one of A's bodies) and running the teacher's
// generic bfs.BFS over it — the traversal algorithm is unchanged from
// bfs/bfs.go, only the domain object (a nonterminal dependency graph
// instead of a user's reachability graph) is new. "Generating" (can derive
// some terminal string) is not a single-source reachability problem — it is
// an AND-join fixed point over binary productions — so it is computed
// directly rather than forced through a traversal that doesn't fit it.
package grammar

import (
	"github.com/rudolf101/formal-lang-go/bfs"
	"github.com/rudolf101/formal-lang-go/core"
)

// dependencyGraph builds the nonterminal dependency DAG (an edge A->B for
// every B mentioned in one of A's binary-production bodies), shared by
// reachableNonterminals (bfs.BFS) and DetectRecursion (dfs.DetectCycles).
func dependencyGraph(w *WCNF) *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for head := range w.Nonterminals {
		_ = g.AddVertex(head)
	}
	for head, pairs := range w.BinaryProds {
		for pair := range pairs {
			_, _ = g.AddEdge(head, pair[0], "")
			_, _ = g.AddEdge(head, pair[1], "")
		}
	}
	return g
}

// reachableNonterminals returns the set of nonterminals reachable from
// start by following production-body references, via bfs.BFS over a
// synthesized dependency graph.
func reachableNonterminals(w *WCNF, start string) map[string]struct{} {
	g := dependencyGraph(w)

	out := map[string]struct{}{start: {}}
	if !g.HasVertex(start) {
		return out
	}
	res, err := bfs.BFS(g, start)
	if err != nil {
		return out
	}
	for _, id := range res.Order {
		out[id] = struct{}{}
	}
	return out
}

// generatingNonterminals returns the set of nonterminals that can derive
// at least one terminal string: those with a term production or an ε
// production directly, plus (by fixed point) any nonterminal with a binary
// production whose both children are generating.
func generatingNonterminals(w *WCNF) map[string]struct{} {
	gen := map[string]struct{}{}
	for head := range w.TermProds {
		gen[head] = struct{}{}
	}
	for head := range w.Nullable {
		gen[head] = struct{}{}
	}

	for {
		changed := false
		for head, pairs := range w.BinaryProds {
			if _, ok := gen[head]; ok {
				continue
			}
			for pair := range pairs {
				_, bOK := gen[pair[0]]
				_, cOK := gen[pair[1]]
				if bOK && cOK {
					gen[head] = struct{}{}
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	return gen
}

// pruneUseless removes every nonterminal that is not both reachable from
// w.Start and generating, along with any table entry that mentions it.
func pruneUseless(w *WCNF) {
	reach := reachableNonterminals(w, w.Start)
	gen := generatingNonterminals(w)

	keep := func(nt string) bool {
		_, r := reach[nt]
		_, g := gen[nt]
		return r && g
	}

	for head := range w.Nonterminals {
		if !keep(head) {
			delete(w.Nonterminals, head)
			delete(w.Nullable, head)
			delete(w.TermProds, head)
			delete(w.BinaryProds, head)
		}
	}
	for head, pairs := range w.BinaryProds {
		for pair := range pairs {
			if !keep(pair[0]) || !keep(pair[1]) {
				delete(pairs, pair)
			}
		}
		if len(pairs) == 0 {
			delete(w.BinaryProds, head)
		}
	}
}
