// Package matrix: core Matrix type.
//
// What & Why:
//
//	Matrix stores a rows×cols boolean relation over the OR/AND semiring.
//	During construction it keeps a dictionary-of-keys (DOK) index —
//	map[int]map[int]struct{} — which supports cheap incremental Set calls
//	in arbitrary order. Once construction is done, Freeze compiles the DOK
//	index into a CSR-like form (rowStart/colIndex, columns sorted within
//	each row) that the hot-path kernels (Multiply, TransitiveClosure,
//	nonzero iteration) read without map indirection.
//
// Complexity:
//
//	Rows()/Cols()/NNZ() run in O(1). Set is O(1) amortized before Freeze
//	and invalid after. Freeze is O(nnz log nnz) (per-row sort).
package matrix

// Matrix is a sparse boolean rows×cols matrix.
//
// A freshly constructed Matrix is in "build mode": Set inserts entries into
// dok. Freeze compiles dok into the CSR-like (rowStart, colIndex) pair and
// marks the matrix frozen; afterwards Set returns ErrFrozen, and readers
// (At, RowCols, Multiply, ...) use the compiled form.
type Matrix struct {
	rows, cols int

	// dok is the build-time dictionary-of-keys index: dok[i][j] present
	// means entry (i,j) is set. Nil once frozen.
	dok map[int]map[int]struct{}

	// rowStart/colIndex form a CSR-like layout, valid once frozen:
	// columns of row i are colIndex[rowStart[i]:rowStart[i+1]], sorted ascending.
	rowStart []int
	colIndex []int

	frozen bool
}

// New allocates an empty rows×cols Matrix in build mode.
// Returns ErrBadShape if rows<=0 or cols<=0.
//
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("New", ErrBadShape)
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		dok:  make(map[int]map[int]struct{}),
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Frozen reports whether Freeze has compiled this matrix into CSR form.
func (m *Matrix) Frozen() bool { return m.frozen }

// NNZ returns the number of set entries.
//
// Complexity: O(1) once frozen; O(rows) (map-size scan) before freezing.
func (m *Matrix) NNZ() int {
	if m.frozen {
		return len(m.colIndex)
	}
	n := 0
	for _, row := range m.dok {
		n += len(row)
	}

	return n
}
