// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid logic duplication - each facade delegates to the canonical kernel.
//
// AI-Hints:
//   - Build with New+Set, then Freeze once before any algebra call (the
//     algebra calls freeze implicitly, but pre-freezing avoids repeated
//     compile work when the same matrix feeds many operations).

package matrix

// Identity returns the n×n identity matrix over the boolean semiring
// (diagonal set, everything else clear). Used to seed reflexive closures.
//
// Complexity: O(n).
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i)
	}

	return m.Freeze(), nil
}

// ReflexiveTransitiveClosure returns TransitiveClosure(m) OR Identity(n),
// i.e. the Kleene-star closure: every vertex reaches itself via zero edges,
// in addition to every pair reachable via one or more edges.
//
// Complexity: same as TransitiveClosure, plus O(n).
func ReflexiveTransitiveClosure(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf("ReflexiveTransitiveClosure", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, matrixErrorf("ReflexiveTransitiveClosure", ErrNonSquare)
	}

	closure, err := TransitiveClosure(m)
	if err != nil {
		return nil, err
	}
	id, err := Identity(m.rows)
	if err != nil {
		return nil, err
	}

	return Add(closure, id)
}
