// iter.go - deterministic nonzero-entry iteration, used by solvers that need
// to walk every present (row,col) pair without materializing a dense grid.

package matrix

import "sort"

// Each calls fn(i, j) once for every present entry, in row-major, column-ascending
// order. fn must not mutate the matrix; Each works in both build and frozen mode.
//
// Complexity: O(nnz) plus O(rows log rows) before Freeze (row-key sort).
func (m *Matrix) Each(fn func(i, j int)) {
	if m == nil || fn == nil {
		return
	}

	if m.frozen {
		for i := 0; i < m.rows; i++ {
			for _, j := range m.colIndex[m.rowStart[i]:m.rowStart[i+1]] {
				fn(i, j)
			}
		}

		return
	}

	rows := make([]int, 0, len(m.dok))
	for i := range m.dok {
		rows = append(rows, i)
	}
	sort.Ints(rows)
	for _, i := range rows {
		cols := make([]int, 0, len(m.dok[i]))
		for j := range m.dok[i] {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			fn(i, j)
		}
	}
}

// RowCols returns the sorted column indices present in row i. Callers must
// not mutate the returned slice when m is frozen (it aliases internal storage).
//
// Complexity: O(d log d) before Freeze (d = row degree), O(d) after.
func (m *Matrix) RowCols(i int) ([]int, error) {
	if m == nil {
		return nil, matrixErrorf("RowCols", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf("RowCols", ErrOutOfRange)
	}

	if m.frozen {
		return m.colIndex[m.rowStart[i]:m.rowStart[i+1]], nil
	}

	row := m.dok[i]
	cols := make([]int, 0, len(row))
	for j := range row {
		cols = append(cols, j)
	}
	sort.Ints(cols)

	return cols, nil
}
