// SPDX-License-Identifier: MIT
// frommatrices.go - BundleFromMatrices: builds a Bundle directly from a
// state list and a pre-built per-symbol matrix map, for callers (CFPQ/Tensor,
// spec §4.J) that grow a bundle's matrices in place across fixed-point
// rounds rather than deriving it once from a static NFA.
package automaton

import (
	"fmt"

	"github.com/rudolf101/formal-lang-go/matrix"
)

// BundleFromMatrices returns a Bundle over states, with start/final sets
// given as dense indices into states, and matrices assigned directly
// (each is Frozen if not already frozen). Every matrix must be N×N where
// N = len(states), else ErrUnknownState wrapped with the offending symbol.
func BundleFromMatrices(states []State, startIdx, finalIdx []int, matrices map[Symbol]*matrix.Matrix) (*Bundle, error) {
	n := len(states)
	b := &Bundle{
		indexOf:  make(map[State]int, n),
		stateAt:  make([]State, n),
		start:    make(map[int]struct{}, len(startIdx)),
		final:    make(map[int]struct{}, len(finalIdx)),
		matrices: make(map[Symbol]*matrix.Matrix, len(matrices)),
	}
	for i, s := range states {
		b.indexOf[s] = i
		b.stateAt[i] = s
	}
	for _, i := range startIdx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("automaton: BundleFromMatrices: start index %d: %w", i, ErrUnknownState)
		}
		b.start[i] = struct{}{}
	}
	for _, i := range finalIdx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("automaton: BundleFromMatrices: final index %d: %w", i, ErrUnknownState)
		}
		b.final[i] = struct{}{}
	}
	for sym, m := range matrices {
		if m == nil {
			continue
		}
		if m.Rows() != n || m.Cols() != n {
			return nil, fmt.Errorf("automaton: BundleFromMatrices: symbol %q: %w", sym, ErrUnknownState)
		}
		b.matrices[sym] = m.Freeze()
	}
	return b, nil
}
