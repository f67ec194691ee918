// SPDX-License-Identifier: MIT
// compile.go - public entry point: Compile(pattern) -> minimal DFA as an
// automaton.NFA (deterministic: each (state,symbol) pair has at most one
// outgoing transition), numbered by BFS order from the start state so the
// start state is always index 0, matching spec §8 scenario 1.
package regexdfa

import "github.com/rudolf101/formal-lang-go/automaton"

// Compile parses pattern, Thompson-constructs an ε-NFA, subset-constructs a
// DFA, and minimizes it by partition refinement. The result's states are
// renumbered 0..k-1 in BFS order from the start state (always state 0).
func Compile(pattern string) (*automaton.NFA, error) {
	ast, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	eps := toEpsilonNFA(ast)
	d := subsetConstruct(eps)
	d = minimizeDFA(d)

	return renumber(d), nil
}

// renumber walks d from its start state in BFS order (alphabet-sorted
// per step, for determinism) and emits an automaton.NFA whose int states
// are 0..k-1 in that visit order.
func renumber(d *dfa) *automaton.NFA {
	out := automaton.NewNFA()
	if len(d.states) == 0 {
		return out
	}

	newID := map[int]int{d.start: 0}
	order := []int{d.start}
	for i := 0; i < len(order); i++ {
		old := order[i]
		for _, sym := range d.alphabet {
			to, ok := d.trans[old][sym]
			if !ok {
				continue
			}
			if _, seen := newID[to]; !seen {
				newID[to] = len(order)
				order = append(order, to)
			}
		}
	}

	for _, old := range order {
		out.AddState(newID[old])
	}
	out.MarkStart(0)
	for _, old := range order {
		if _, ok := d.final[old]; ok {
			out.MarkFinal(newID[old])
		}
	}
	for _, old := range order {
		for _, sym := range d.alphabet {
			if to, ok := d.trans[old][sym]; ok {
				out.AddTransition(newID[old], sym, newID[to])
			}
		}
	}

	return out
}
