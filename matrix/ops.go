// ops.go - boolean-semiring matrix algebra: Add (OR), Multiply (AND-then-OR
// composition), Transpose, Kronecker (product-automaton construction), and
// BlockDiagonal (direct sum, used to batch multiple BFS fronts).
//
// Every operation freezes its operands first (a no-op if already frozen)
// and returns a fresh, already-frozen Matrix: solvers chain these calls
// across fixed-point iterations without ever touching build mode again.

package matrix

// Add returns the element-wise boolean OR of a and b. Both operands must
// share the same shape, else ErrDimensionMismatch.
//
// Complexity: O(nnz(a)+nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("Add", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, matrixErrorf("Add", ErrDimensionMismatch)
	}
	a.Freeze()
	b.Freeze()

	out, err := New(a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	a.Each(func(i, j int) { _ = out.Set(i, j) })
	b.Each(func(i, j int) { _ = out.Set(i, j) })

	return out.Freeze(), nil
}

// Equal reports whether a and b have identical shape and entries.
// Used by fixed-point loops (transitive closure, CFPQ worklists) to detect
// convergence: iterate until Equal(prev, next).
//
// Complexity: O(nnz(a)+nnz(b)).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	if a.NNZ() != b.NNZ() {
		return false
	}
	a.Freeze()
	b.Freeze()
	equal := true
	a.Each(func(i, j int) {
		if present, _ := b.At(i, j); !present {
			equal = false
		}
	})

	return equal
}

// Transpose returns mᵀ: entry (j,i) of the result is set iff entry (i,j) of m is set.
//
// Complexity: O(nnz(m)).
func Transpose(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf("Transpose", ErrNilMatrix)
	}
	m.Freeze()

	out, err := New(m.cols, m.rows)
	if err != nil {
		return nil, err
	}
	m.Each(func(i, j int) { _ = out.Set(j, i) })

	return out.Freeze(), nil
}

// Multiply returns the boolean matrix product a×b: entry (i,k) is set iff
// there exists j with a(i,j) and b(j,k) both set. Requires a.Cols == b.Rows.
//
// Complexity: O(nnz(a) * avgDegree(b)) using a's nonzero columns to probe b's rows.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("Multiply", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, matrixErrorf("Multiply", ErrDimensionMismatch)
	}
	a.Freeze()
	b.Freeze()

	out, err := New(a.rows, b.cols)
	if err != nil {
		return nil, err
	}

	for i := 0; i < a.rows; i++ {
		cols, _ := a.RowCols(i)
		for _, j := range cols {
			ks, _ := b.RowCols(j)
			for _, k := range ks {
				_ = out.Set(i, k)
			}
		}
	}

	return out.Freeze(), nil
}

// Kronecker returns the Kronecker (tensor) product a⊗b, of shape
// (a.Rows*b.Rows)×(a.Cols*b.Cols). Entry ((i1*b.Rows+i2), (j1*b.Cols+j2)) is
// set iff a(i1,j1) and b(i2,j2) are both set.
//
// This is the product-automaton construction: applying Kronecker to two
// automata's per-symbol matrices and then OR-summing over the alphabet
// yields the combined transition relation of their product automaton.
//
// Complexity: O(nnz(a)*nnz(b)).
func Kronecker(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("Kronecker", ErrNilMatrix)
	}
	a.Freeze()
	b.Freeze()

	out, err := New(a.rows*b.rows, a.cols*b.cols)
	if err != nil {
		return nil, err
	}

	a.Each(func(i1, j1 int) {
		b.Each(func(i2, j2 int) {
			_ = out.Set(i1*b.rows+i2, j1*b.cols+j2)
		})
	})

	return out.Freeze(), nil
}

// BlockDiagonal returns the direct sum of mats: a square matrix of size
// Σrows(mats) whose block (k,k) on the diagonal equals mats[k], and all
// off-diagonal blocks are zero. Used to batch multiple automata (or BFS
// fronts over multiple start states) into a single matrix so one round of
// Multiply advances every batched automaton simultaneously.
//
// All matrices must be square; BlockDiagonal of zero matrices returns an
// error (there is no sensible 0×0 result to build solvers on top of).
//
// Complexity: O(Σnnz(mats)).
func BlockDiagonal(mats ...*Matrix) (*Matrix, error) {
	if len(mats) == 0 {
		return nil, matrixErrorf("BlockDiagonal", ErrBadShape)
	}

	size := 0
	for idx, mm := range mats {
		if mm == nil {
			return nil, matrixErrorf("BlockDiagonal", ErrNilMatrix)
		}
		if mm.rows != mm.cols {
			return nil, matrixErrorf("BlockDiagonal", ErrNonSquare)
		}
		_ = idx
		size += mm.rows
	}

	out, err := New(size, size)
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, mm := range mats {
		mm.Freeze()
		base := offset
		mm.Each(func(i, j int) { _ = out.Set(base+i, base+j) })
		offset += mm.rows
	}

	return out.Freeze(), nil
}
