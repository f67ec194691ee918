// SPDX-License-Identifier: MIT
// rsm.go - RSM: one minimized-DFA "box" per nonterminal, grounded on
// project/rsm.py's RSM.from_ecfg and the automaton-as-matrices bundle
// (automaton.Bundle) that CFPQ/Tensor (spec §4.J) consumes.
package grammar

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/automaton"
	"github.com/rudolf101/formal-lang-go/internal/regexdfa"
)

// RSMState tags a box-local DFA state index with the nonterminal box it
// belongs to, so a CFPQ solver can recover "which box, which inner state"
// from a dense Bundle index via Bundle.StateAt.
type RSMState struct {
	NT    string
	Inner int
}

// RSM is a recursive state machine: one minimized DFA box per nonterminal,
// whose alphabet is the union of the grammar's terminals and nonterminals
// (a transition labeled by a nonterminal N is a "call" into box N).
type RSM struct {
	Start string
	Boxes map[string]*automaton.NFA
}

// FromECFG compiles every nonterminal's regex into a minimized DFA box via
// internal/regexdfa.Compile.
func FromECFG(e *ECFG) (*RSM, error) {
	if e == nil {
		return nil, fmt.Errorf("grammar: FromECFG: %w", ErrNilGrammar)
	}
	r := &RSM{Start: e.Start, Boxes: make(map[string]*automaton.NFA, len(e.Productions))}
	for nt, regex := range e.Productions {
		box, err := regexdfa.Compile(regex)
		if err != nil {
			return nil, fmt.Errorf("grammar: FromECFG: box %q: %w", nt, err)
		}
		r.Boxes[nt] = box
	}
	return r, nil
}

// ToBundle merges every box into a single automaton.Bundle over tagged
// RSMState{NT, inner} states: per-box start/final states become the merged
// bundle's start/final sets, and per-box transitions (terminal- or
// nonterminal-labeled) carry over unchanged. CFPQ/Tensor matches terminal
// symbols directly against the graph bundle and treats a nonterminal symbol
// as a pending call into that nonterminal's own box.
func (r *RSM) ToBundle() (*automaton.Bundle, error) {
	if r == nil {
		return nil, fmt.Errorf("grammar: RSM.ToBundle: %w", ErrNilGrammar)
	}

	merged := automaton.NewNFA()
	for nt, box := range r.Boxes {
		for _, s := range box.States {
			merged.AddState(RSMState{NT: nt, Inner: s.(int)})
		}
		for _, s := range box.Start {
			merged.MarkStart(RSMState{NT: nt, Inner: s.(int)})
		}
		for _, s := range box.Final {
			merged.MarkFinal(RSMState{NT: nt, Inner: s.(int)})
		}
		for _, tr := range box.Transitions {
			merged.AddTransition(
				RSMState{NT: nt, Inner: tr.From.(int)},
				tr.Symbol,
				RSMState{NT: nt, Inner: tr.To.(int)},
			)
		}
	}

	return automaton.FromNFA(merged)
}

// BoxStart returns the dense start-state index of nt's box within a Bundle
// built by ToBundle, or ErrUnknownState if nt has no box or its box lacks a
// recorded start state.
func (r *RSM) BoxStart(b *automaton.Bundle, nt string) (int, error) {
	box, ok := r.Boxes[nt]
	if !ok || len(box.Start) == 0 {
		return 0, fmt.Errorf("grammar: BoxStart(%q): %w", nt, automaton.ErrUnknownState)
	}
	return b.IndexOf(RSMState{NT: nt, Inner: box.Start[0].(int)})
}
