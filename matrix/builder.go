// builder.go - build-time mutation (Set) and the DOK→CSR compile step (Freeze).

package matrix

import "sort"

// Set marks entry (i,j) present. Out-of-range indices return ErrOutOfRange.
// Calling Set after Freeze returns ErrFrozen: once compiled to CSR form a
// Matrix is treated as immutable, matching how every solver in this module
// consumes matrices (built once, then read many times per fixed-point step).
//
// Complexity: O(1) amortized.
func (m *Matrix) Set(i, j int) error {
	if m == nil {
		return matrixErrorf("Set", ErrNilMatrix)
	}
	if m.frozen {
		return matrixErrorf("Set", ErrFrozen)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return matrixErrorf("Set", ErrOutOfRange)
	}

	row, ok := m.dok[i]
	if !ok {
		row = make(map[int]struct{})
		m.dok[i] = row
	}
	row[j] = struct{}{}

	return nil
}

// Freeze compiles the matrix's build-time DOK index into a CSR-like layout
// and returns the same receiver for chaining. Freeze is idempotent: calling
// it twice is a no-op on the second call.
//
// Complexity: O(nnz log nnz) (per-row column sort).
func (m *Matrix) Freeze() *Matrix {
	if m == nil || m.frozen {
		return m
	}

	rowStart := make([]int, m.rows+1)
	nnz := 0
	for i := 0; i < m.rows; i++ {
		nnz += len(m.dok[i])
		rowStart[i+1] = nnz
	}

	colIndex := make([]int, 0, nnz)
	for i := 0; i < m.rows; i++ {
		cols := make([]int, 0, len(m.dok[i]))
		for j := range m.dok[i] {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		colIndex = append(colIndex, cols...)
	}

	m.rowStart = rowStart
	m.colIndex = colIndex
	m.dok = nil
	m.frozen = true

	return m
}

// At reports whether entry (i,j) is present. Works in both build and frozen
// mode. Out-of-range indices return ErrOutOfRange.
//
// Complexity: O(1) amortized before Freeze; O(log d) after (d = row degree).
func (m *Matrix) At(i, j int) (bool, error) {
	if m == nil {
		return false, matrixErrorf("At", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false, matrixErrorf("At", ErrOutOfRange)
	}

	if !m.frozen {
		row, ok := m.dok[i]
		if !ok {
			return false, nil
		}
		_, present := row[j]

		return present, nil
	}

	lo, hi := m.rowStart[i], m.rowStart[i+1]
	idx := sort.SearchInts(m.colIndex[lo:hi], j)

	return idx < hi-lo && m.colIndex[lo+idx] == j, nil
}

// Clone returns a deep, independent copy of m in the same mode (build or
// frozen) as the receiver.
//
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out := &Matrix{rows: m.rows, cols: m.cols, frozen: m.frozen}
	if m.frozen {
		out.rowStart = append([]int(nil), m.rowStart...)
		out.colIndex = append([]int(nil), m.colIndex...)

		return out
	}

	out.dok = make(map[int]map[int]struct{}, len(m.dok))
	for i, row := range m.dok {
		r := make(map[int]struct{}, len(row))
		for j := range row {
			r[j] = struct{}{}
		}
		out.dok[i] = r
	}

	return out
}
