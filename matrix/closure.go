// closure.go - (non-reflexive) transitive closure of a boolean adjacency,
// the fixed point the rpq and cfpq Tensor solvers read their pairs from.

package matrix

// TransitiveClosure returns the smallest matrix R such that R contains m and
// R = R OR (R×R): every pair (i,j) reachable from i to j via one or more
// m-edges. The reflexive diagonal is NOT added automatically; (i,i) is set
// only when a cycle through i exists (ReflexiveTransitiveClosure ORs in the
// identity). m must be square.
//
// Implementation: sum-then-double. Starting from R=m, repeatedly compute
// R' = R OR (R×R) and replace R with R' until a round changes nothing. Each
// round doubles the path length covered, so this converges in O(log n)
// rounds rather than the O(n) rounds of naive worklist propagation.
//
// Complexity: O(log n) rounds of Multiply, each O(nnz(R) * avgDegree(R)).
func TransitiveClosure(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf("TransitiveClosure", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, matrixErrorf("TransitiveClosure", ErrNonSquare)
	}

	r := m.Clone().Freeze()
	for {
		squared, err := Multiply(r, r)
		if err != nil {
			return nil, matrixErrorf("TransitiveClosure", err)
		}
		next, err := Add(r, squared)
		if err != nil {
			return nil, matrixErrorf("TransitiveClosure", err)
		}
		if Equal(next, r) {
			return next, nil
		}
		r = next
	}
}
