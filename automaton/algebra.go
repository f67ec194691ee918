// SPDX-License-Identifier: MIT
// algebra.go - Bundle-level algebra: Intersect (product automaton via
// Kronecker product per shared symbol) and DirectSum (block-diagonal per
// shared symbol), plus the decode helper the spec's Design Notes §9
// recommends so every solver shares one index-math convention.

package automaton

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/matrix"
)

// pairState is the tagged product-state identity the spec's open question 1
// prefers over a bare integer: it carries both operands' external states so
// a caller (notably CFPQ/Tensor, which must recover the nonterminal tag of
// the RSM-side state) never needs a second dictionary.
type pairState struct {
	Left, Right State
}

// Intersect builds the product automaton of a and b (component B,
// spec §4.B): for every symbol present in both operands' matrices it
// computes the Kronecker product; a symbol present in only one operand
// contributes no product matrix, since no path through both automata can
// traverse it. The product's dense index for (a-index i, b-index j) is
// i*b.N()+j (the lex product spec §4.B specifies); the returned Bundle does
// not record b.N(), so callers pass it to DecodeProductIndex to recover
// (i,j) from that integer.
func Intersect(a, b *Bundle) (*Bundle, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("automaton: Intersect: %w", ErrNilBundle)
	}

	nA, nB := a.N(), b.N()
	out := &Bundle{
		indexOf:  make(map[State]int, nA*nB),
		stateAt:  make([]State, nA*nB),
		start:    make(map[int]struct{}),
		final:    make(map[int]struct{}),
		matrices: make(map[Symbol]*matrix.Matrix),
	}
	for i := 0; i < nA; i++ {
		for j := 0; j < nB; j++ {
			idx := i*nB + j
			ps := pairState{Left: a.StateAt(i), Right: b.StateAt(j)}
			out.indexOf[ps] = idx
			out.stateAt[idx] = ps
			if a.IsStart(i) && b.IsStart(j) {
				out.start[idx] = struct{}{}
			}
			if a.IsFinal(i) && b.IsFinal(j) {
				out.final[idx] = struct{}{}
			}
		}
	}

	for sym, ma := range a.matrices {
		mb, ok := b.matrices[sym]
		if !ok {
			continue
		}
		product, err := matrix.Kronecker(ma, mb)
		if err != nil {
			return nil, fmt.Errorf("automaton: Intersect: symbol %q: %w", sym, err)
		}
		out.matrices[sym] = product
	}

	return out, nil
}

// DirectSum returns the block-diagonal combination of a and b (spec §4.B):
// per shared symbol it block-diagonals the two per-symbol matrices, shifts
// b's states by a.N(), and unions the start/final sets. This is used only to
// pack "query ⊕ graph" into a single matrix for the BFS solver (§4.F), which
// then tells query-range indices (< a.N()) from graph-range indices (>=
// a.N()) by a plain range check.
func DirectSum(a, b *Bundle) (*Bundle, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("automaton: DirectSum: %w", ErrNilBundle)
	}

	nA, nB := a.N(), b.N()
	out := &Bundle{
		indexOf:  make(map[State]int, nA+nB),
		stateAt:  make([]State, nA+nB),
		start:    make(map[int]struct{}),
		final:    make(map[int]struct{}),
		matrices: make(map[Symbol]*matrix.Matrix),
	}
	for i := 0; i < nA; i++ {
		out.indexOf[a.StateAt(i)] = i
		out.stateAt[i] = a.StateAt(i)
		if a.IsStart(i) {
			out.start[i] = struct{}{}
		}
		if a.IsFinal(i) {
			out.final[i] = struct{}{}
		}
	}
	for j := 0; j < nB; j++ {
		idx := nA + j
		out.indexOf[b.StateAt(j)] = idx
		out.stateAt[idx] = b.StateAt(j)
		if b.IsStart(j) {
			out.start[idx] = struct{}{}
		}
		if b.IsFinal(j) {
			out.final[idx] = struct{}{}
		}
	}

	symbols := make(map[Symbol]struct{}, len(a.matrices)+len(b.matrices))
	for sym := range a.matrices {
		symbols[sym] = struct{}{}
	}
	for sym := range b.matrices {
		symbols[sym] = struct{}{}
	}
	for sym := range symbols {
		ma := a.matrices[sym]
		if ma == nil {
			var err error
			ma, err = matrix.New(nA, nA)
			if err != nil {
				return nil, fmt.Errorf("automaton: DirectSum: %w", err)
			}
			ma = ma.Freeze()
		}
		mb := b.matrices[sym]
		if mb == nil {
			var err error
			mb, err = matrix.New(nB, nB)
			if err != nil {
				return nil, fmt.Errorf("automaton: DirectSum: %w", err)
			}
			mb = mb.Freeze()
		}
		bd, err := matrix.BlockDiagonal(ma, mb)
		if err != nil {
			return nil, fmt.Errorf("automaton: DirectSum: symbol %q: %w", sym, err)
		}
		out.matrices[sym] = bd
	}

	return out, nil
}

// DecodeProductIndex decodes a lex-product dense index i = left*nRight+right
// back into (left, right), per the spec's Design Notes §9 recommendation
// that every solver share one decode convention keyed on the width of the
// *right* operand (never the left/query width — that is the class of bug
// the spec calls out).
func DecodeProductIndex(nRight, i int) (left, right int) {
	return i / nRight, i % nRight
}
