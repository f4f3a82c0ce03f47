// Package gf2 Dense: a concrete row-major bit matrix stored in a flat
// byte slice for cache friendliness and exact, branch-free XOR loops.
package gf2

import (
	"fmt"
	"strings"
)

// Dense is a row-major r×c matrix of bits, each stored as a 0/1 byte.
// Zero-row matrices (r == 0) are valid values: they represent empty bases
// and fully stripped reductions. A Dense is owned exclusively by its
// holder; the only routine that mutates one is ReduceInPlace, and only on
// the value passed into it.
type Dense struct {
	r, c int     // number of rows and columns
	data []uint8 // flat backing storage, length == r*c, entries 0 or 1
}

// NewDense creates an r×c zero matrix. Rows may be zero (an empty
// matrix with a well-defined column count); columns must be positive.
// Complexity: O(r·c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a rectangular slice of 0/1 rows.
// Errors: ErrBadShape on an empty or ragged input, ErrNonBinary on any
// entry other than 0 or 1.
// Complexity: O(r·c).
func NewDenseFromRows(rows [][]uint8) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: empty input: %w", ErrBadShape)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d entries, want %d: %w",
				i, len(row), cols, ErrBadShape)
		}
		for j, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("NewDenseFromRows: entry (%d,%d)=%d: %w", i, j, v, ErrNonBinary)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the bit at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (uint8, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d) on %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns bit v at (row, col). Errors: ErrOutOfRange on a bad index,
// ErrNonBinary when v is neither 0 nor 1.
func (m *Dense) Set(row, col int, v uint8) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d) on %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}
	if v > 1 {
		return fmt.Errorf("Dense.Set(%d,%d)=%d: %w", row, col, v, ErrNonBinary)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns a copy of row i. The copy never aliases internal storage.
func (m *Dense) Row(i int) ([]uint8, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d) on %dx%d: %w", i, m.r, m.c, ErrOutOfRange)
	}
	out := make([]uint8, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy.
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	data := make([]uint8, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and other have identical shape and bits.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// MulVec computes the GF(2) matrix-vector product m·v, one bit per row
// (the plain dot product modulo 2). Errors: ErrDimensionMismatch when
// len(v) != Cols, ErrNonBinary on a non-bit entry in v.
// Complexity: O(r·c).
func (m *Dense) MulVec(v []uint8) ([]uint8, error) {
	if len(v) != m.c {
		return nil, fmt.Errorf("Dense.MulVec: vector length %d, want %d: %w", len(v), m.c, ErrDimensionMismatch)
	}
	for j, b := range v {
		if b > 1 {
			return nil, fmt.Errorf("Dense.MulVec: entry %d=%d: %w", j, b, ErrNonBinary)
		}
	}
	out := make([]uint8, m.r)
	for i := 0; i < m.r; i++ {
		var acc uint8
		row := m.data[i*m.c : (i+1)*m.c]
		for j, b := range v {
			acc ^= row[j] & b // AND then XOR-accumulate: arithmetic mod 2
		}
		out[i] = acc
	}

	return out, nil
}

// String renders one bracketed row per line, e.g. "[1 0 1]".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + m.data[i*m.c+j])
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// bit reads without bounds checks; callers guarantee validity.
func (m *Dense) bit(row, col int) uint8 { return m.data[row*m.c+col] }

// rowSlice returns the aliasing view of row i; internal use only.
func (m *Dense) rowSlice(i int) []uint8 { return m.data[i*m.c : (i+1)*m.c] }

// isZeroRow reports whether row i is entirely zero.
func (m *Dense) isZeroRow(i int) bool {
	for _, v := range m.rowSlice(i) {
		if v != 0 {
			return false
		}
	}

	return true
}

// swapRows exchanges rows i and j in place. A no-op when i == j.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.rowSlice(i), m.rowSlice(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// StripZeroRows returns a new matrix containing only the nonzero rows of
// m, in their original order. The result may have zero rows.
// Complexity: O(r·c).
func StripZeroRows(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("StripZeroRows: %w", ErrNilMatrix)
	}
	kept := make([]int, 0, m.r)
	for i := 0; i < m.r; i++ {
		if !m.isZeroRow(i) {
			kept = append(kept, i)
		}
	}
	out := &Dense{r: len(kept), c: m.c, data: make([]uint8, len(kept)*m.c)}
	for oi, i := range kept {
		copy(out.rowSlice(oi), m.rowSlice(i))
	}

	return out, nil
}

// Transpose returns mᵀ as a new matrix. A zero-row input cannot be
// transposed (the result would have zero columns) and yields ErrBadShape.
// Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilMatrix)
	}
	if m.r == 0 {
		return nil, fmt.Errorf("Transpose: %dx%d: %w", m.r, m.c, ErrBadShape)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]uint8, m.c*m.r)}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Rank computes the rank of m over GF(2) by plain Gaussian elimination on
// a scratch copy (forward scan per column, first nonzero pivot, eliminate
// above and below). This is the textbook rank, independent of the
// diagonal-walk reducer, and is what independence checks should use.
// Complexity: O(r·c·min(r,c)).
func Rank(m *Dense) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("Rank: %w", ErrNilMatrix)
	}
	a := m.Clone()
	rank := 0
	for col := 0; col < a.c && rank < a.r; col++ {
		pivot := -1
		for i := rank; i < a.r; i++ {
			if a.bit(i, col) == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue // no pivot in this column
		}
		a.swapRows(rank, pivot)
		prow := a.rowSlice(rank)
		for i := 0; i < a.r; i++ {
			if i == rank || a.bit(i, col) == 0 {
				continue
			}
			row := a.rowSlice(i)
			for k := col; k < a.c; k++ {
				row[k] ^= prow[k]
			}
		}
		rank++
	}

	return rank, nil
}
