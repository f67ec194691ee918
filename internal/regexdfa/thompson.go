// SPDX-License-Identifier: MIT
// thompson.go - Thompson construction: AST -> ε-NFA over fresh int states.
package regexdfa

import "github.com/rudolf101/formal-lang-go/automaton"

const epsilon = automaton.Symbol("")

// thompsonBuilder accumulates fresh int states into an automaton.NFA.
type thompsonBuilder struct {
	nfa  *automaton.NFA
	next int
}

func (b *thompsonBuilder) fresh() int {
	s := b.next
	b.next++
	b.nfa.AddState(s)
	return s
}

// build returns the (start, accept) state pair of n's Thompson fragment,
// adding its states/transitions to b.nfa.
func (b *thompsonBuilder) build(n *node) (start, accept int) {
	switch n.kind {
	case nodeEpsilon:
		s, a := b.fresh(), b.fresh()
		b.nfa.AddTransition(s, epsilon, a)
		return s, a
	case nodeSymbol:
		s, a := b.fresh(), b.fresh()
		b.nfa.AddTransition(s, n.symbol, a)
		return s, a
	case nodeConcat:
		s1, a1 := b.build(n.left)
		s2, a2 := b.build(n.right)
		b.nfa.AddTransition(a1, epsilon, s2)
		return s1, a2
	case nodeUnion:
		s1, a1 := b.build(n.left)
		s2, a2 := b.build(n.right)
		s, a := b.fresh(), b.fresh()
		b.nfa.AddTransition(s, epsilon, s1)
		b.nfa.AddTransition(s, epsilon, s2)
		b.nfa.AddTransition(a1, epsilon, a)
		b.nfa.AddTransition(a2, epsilon, a)
		return s, a
	case nodeStar:
		s1, a1 := b.build(n.left)
		s, a := b.fresh(), b.fresh()
		b.nfa.AddTransition(s, epsilon, s1)
		b.nfa.AddTransition(s, epsilon, a)
		b.nfa.AddTransition(a1, epsilon, a)
		b.nfa.AddTransition(a1, epsilon, s1)
		return s, a
	default:
		s, a := b.fresh(), b.fresh()
		return s, a
	}
}

// toEpsilonNFA Thompson-constructs n into an automaton.NFA with a single
// start state and a single final state.
func toEpsilonNFA(n *node) *automaton.NFA {
	b := &thompsonBuilder{nfa: automaton.NewNFA()}
	start, accept := b.build(n)
	b.nfa.MarkStart(start)
	b.nfa.MarkFinal(accept)
	return b.nfa
}
