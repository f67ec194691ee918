// SPDX-License-Identifier: MIT
// bundle.go - Bundle: the AutomatonMatrices data type (spec §3/§4.B) plus
// FromNFA/ToNFA conversions between the matrix representation and the plain
// NFA graph shape.

package automaton

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/matrix"
)

// Bundle is an automaton represented as a bundle of per-symbol boolean
// matrices, a dense state↔index map, and start/final state sets (component
// B). A Bundle never mutates after FromNFA/Intersect/DirectSum return it;
// every solver treats a Bundle as a read-only value.
type Bundle struct {
	// indexOf maps an external state value to its dense index in [0,N).
	indexOf map[State]int
	// stateAt is the inverse of indexOf: stateAt[i] is the external state
	// at dense index i.
	stateAt []State

	// start/final hold dense indices, not external state values, since every
	// solver needs O(1) membership tests against matrix row/column indices.
	start map[int]struct{}
	final map[int]struct{}

	// matrices holds one N×N boolean matrix per alphabet symbol present in
	// the automaton. A symbol absent from this map contributes the zero
	// matrix (spec §3 invariant).
	matrices map[Symbol]*matrix.Matrix
}

// N returns the number of states in the bundle.
func (b *Bundle) N() int {
	if b == nil {
		return 0
	}
	return len(b.stateAt)
}

// IndexOf returns the dense index of an external state, or ErrUnknownState.
func (b *Bundle) IndexOf(s State) (int, error) {
	if b == nil {
		return 0, ErrNilBundle
	}
	idx, ok := b.indexOf[s]
	if !ok {
		return 0, fmt.Errorf("automaton: IndexOf(%v): %w", s, ErrUnknownState)
	}
	return idx, nil
}

// StateAt returns the external state at dense index i.
func (b *Bundle) StateAt(i int) State {
	if b == nil || i < 0 || i >= len(b.stateAt) {
		return nil
	}
	return b.stateAt[i]
}

// IsStart reports whether dense index i is a start state.
func (b *Bundle) IsStart(i int) bool {
	if b == nil {
		return false
	}
	_, ok := b.start[i]
	return ok
}

// IsFinal reports whether dense index i is a final state.
func (b *Bundle) IsFinal(i int) bool {
	if b == nil {
		return false
	}
	_, ok := b.final[i]
	return ok
}

// Symbols returns the set of alphabet symbols carrying a nonzero matrix, in
// no particular order.
func (b *Bundle) Symbols() []Symbol {
	if b == nil {
		return nil
	}
	out := make([]Symbol, 0, len(b.matrices))
	for s := range b.matrices {
		out = append(out, s)
	}
	return out
}

// Matrix returns the N×N boolean matrix for symbol s, or nil if s carries no
// transitions (the zero matrix, per the §3 invariant).
func (b *Bundle) Matrix(s Symbol) *matrix.Matrix {
	if b == nil {
		return nil
	}
	return b.matrices[s]
}

// SumMatrix returns the OR of every per-symbol matrix, i.e. the "any symbol"
// transition relation used to seed TransitiveClosure.
func (b *Bundle) SumMatrix() (*matrix.Matrix, error) {
	if b == nil {
		return nil, ErrNilBundle
	}
	n := b.N()
	sum, err := matrix.New(n, n)
	if err != nil {
		return nil, fmt.Errorf("automaton: SumMatrix: %w", err)
	}
	sum = sum.Freeze()
	for _, m := range b.matrices {
		sum, err = matrix.Add(sum, m)
		if err != nil {
			return nil, fmt.Errorf("automaton: SumMatrix: %w", err)
		}
	}
	return sum, nil
}

// FromNFA assigns dense indices to n.States in iteration (slice) order,
// copies the start/final sets, and sets matrices[symbol][idx(from),idx(to)]
// for every transition (spec §4.B).
func FromNFA(n *NFA) (*Bundle, error) {
	if n == nil {
		return nil, fmt.Errorf("automaton: FromNFA: %w", ErrNilBundle)
	}

	b := &Bundle{
		indexOf:  make(map[State]int, len(n.States)),
		stateAt:  make([]State, len(n.States)),
		start:    make(map[int]struct{}),
		final:    make(map[int]struct{}),
		matrices: make(map[Symbol]*matrix.Matrix),
	}
	for i, s := range n.States {
		b.indexOf[s] = i
		b.stateAt[i] = s
	}
	for _, s := range n.Start {
		idx, ok := b.indexOf[s]
		if !ok {
			return nil, fmt.Errorf("automaton: FromNFA: start state %v: %w", s, ErrUnknownState)
		}
		b.start[idx] = struct{}{}
	}
	for _, s := range n.Final {
		idx, ok := b.indexOf[s]
		if !ok {
			return nil, fmt.Errorf("automaton: FromNFA: final state %v: %w", s, ErrUnknownState)
		}
		b.final[idx] = struct{}{}
	}

	nStates := len(n.States)
	builders := make(map[Symbol]*matrix.Matrix)
	for _, tr := range n.Transitions {
		from, ok := b.indexOf[tr.From]
		if !ok {
			return nil, fmt.Errorf("automaton: FromNFA: transition from %v: %w", tr.From, ErrUnknownState)
		}
		to, ok := b.indexOf[tr.To]
		if !ok {
			return nil, fmt.Errorf("automaton: FromNFA: transition to %v: %w", tr.To, ErrUnknownState)
		}
		mm, ok := builders[tr.Symbol]
		if !ok {
			var err error
			mm, err = matrix.New(nStates, nStates)
			if err != nil {
				return nil, fmt.Errorf("automaton: FromNFA: %w", err)
			}
			builders[tr.Symbol] = mm
		}
		if err := mm.Set(from, to); err != nil {
			return nil, fmt.Errorf("automaton: FromNFA: Set(%d,%d): %w", from, to, err)
		}
	}
	for sym, mm := range builders {
		b.matrices[sym] = mm.Freeze()
	}

	return b, nil
}

// ToNFA is the inverse of FromNFA: it produces an NFA with the same labeled
// transitions and start/final sets as b.
func ToNFA(b *Bundle) (*NFA, error) {
	if b == nil {
		return nil, ErrNilBundle
	}

	n := NewNFA()
	for _, s := range b.stateAt {
		n.AddState(s)
	}
	for idx := range b.start {
		n.MarkStart(b.stateAt[idx])
	}
	for idx := range b.final {
		n.MarkFinal(b.stateAt[idx])
	}
	for sym, mm := range b.matrices {
		mm.Each(func(i, j int) {
			n.AddTransition(b.stateAt[i], sym, b.stateAt[j])
		})
	}

	return n, nil
}
