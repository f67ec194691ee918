// SPDX-License-Identifier: MIT
// subset.go - subset construction: ε-NFA -> DFA, represented as a dfa
// (NFA-state sets, deduplicated by their sorted key) plus a transition table.
package regexdfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rudolf101/formal-lang-go/automaton"
)

type intSet map[int]struct{}

func (s intSet) key() string {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// nfaIndex indexes an NFA's ε- and symbol transitions (eps/sym) by
// from-state for fast lookup.
type nfaIndex struct {
	eps map[int]intSet
	sym map[int]map[string]intSet
	fin map[int]struct{}
}

func indexNFA(n *automaton.NFA) *nfaIndex {
	idx := &nfaIndex{
		eps: make(map[int]intSet),
		sym: make(map[int]map[string]intSet),
		fin: make(map[int]struct{}),
	}
	for _, tr := range n.Transitions {
		from := tr.From.(int)
		to := tr.To.(int)
		if tr.Symbol == epsilon {
			if idx.eps[from] == nil {
				idx.eps[from] = make(intSet)
			}
			idx.eps[from][to] = struct{}{}
			continue
		}
		if idx.sym[from] == nil {
			idx.sym[from] = make(map[string]intSet)
		}
		if idx.sym[from][tr.Symbol] == nil {
			idx.sym[from][tr.Symbol] = make(intSet)
		}
		idx.sym[from][tr.Symbol][to] = struct{}{}
	}
	for _, f := range n.Final {
		idx.fin[f.(int)] = struct{}{}
	}
	return idx
}

func (idx *nfaIndex) closure(seed intSet) intSet {
	out := make(intSet, len(seed))
	stack := make([]int, 0, len(seed))
	for s := range seed {
		out[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := range idx.eps[s] {
			if _, ok := out[t]; !ok {
				out[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}
	return out
}

// dfa is the subset-construction output: states numbered by creation order
// (0 = start), a partial transition table, and the final-state set.
type dfa struct {
	states    []intSet
	start     int
	final     map[int]struct{}
	alphabet  []string
	trans     []map[string]int // trans[state][symbol] = target state
}

func subsetConstruct(n *automaton.NFA) *dfa {
	idx := indexNFA(n)

	alphaSet := make(map[string]struct{})
	for _, tr := range n.Transitions {
		if tr.Symbol != epsilon {
			alphaSet[tr.Symbol] = struct{}{}
		}
	}
	alphabet := make([]string, 0, len(alphaSet))
	for s := range alphaSet {
		alphabet = append(alphabet, s)
	}
	sort.Strings(alphabet)

	startSeed := make(intSet)
	for _, s := range n.Start {
		startSeed[s.(int)] = struct{}{}
	}
	startSet := idx.closure(startSeed)

	d := &dfa{final: make(map[int]struct{}), alphabet: alphabet}
	seen := map[string]int{}
	order := []intSet{}

	addState := func(set intSet) int {
		k := set.key()
		if id, ok := seen[k]; ok {
			return id
		}
		id := len(order)
		seen[k] = id
		order = append(order, set)
		return id
	}

	startID := addState(startSet)
	d.start = startID

	for i := 0; i < len(order); i++ {
		set := order[i]
		for s := range set {
			if _, ok := idx.fin[s]; ok {
				d.final[i] = struct{}{}
				break
			}
		}
		row := make(map[string]int)
		for _, sym := range alphabet {
			moveSeed := make(intSet)
			for s := range set {
				for t := range idx.sym[s][sym] {
					moveSeed[t] = struct{}{}
				}
			}
			if len(moveSeed) == 0 {
				continue
			}
			closed := idx.closure(moveSeed)
			row[sym] = addState(closed)
		}
		d.trans = append(d.trans, row)
	}
	d.states = order

	return d
}
