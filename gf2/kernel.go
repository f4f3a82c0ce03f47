package gf2

import "fmt"

// PivotColumns returns, for each row of m, the column of its first
// nonzero entry. The input is expected to be a reduced matrix with its
// zero rows stripped; a surviving all-zero row is a broken caller
// contract and yields ErrZeroRow with the offending row index.
// Complexity: O(r·c).
func PivotColumns(m *Dense) ([]int, error) {
	if m == nil {
		return nil, fmt.Errorf("PivotColumns: %w", ErrNilMatrix)
	}
	pivots := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		col := -1
		for j := 0; j < m.c; j++ {
			if m.bit(i, j) == 1 {
				col = j
				break
			}
		}
		if col < 0 {
			return nil, fmt.Errorf("PivotColumns: row %d of %dx%d: %w", i, m.r, m.c, ErrZeroRow)
		}
		pivots[i] = col
	}

	return pivots, nil
}

// Kernel computes a basis for the right nullspace of m over GF(2).
//
// The input must be a reduced matrix with all-zero rows stripped (see
// ReduceInPlace and StripZeroRows); every row then has a pivot. The basis
// is built on a C×K staging matrix in two named, order-independent phases:
//
//  1. free-variable seeding — for the j-th free (non-pivot) column f,
//     set staging row f to the j-th unit vector ("free variable j = 1,
//     all other free variables = 0");
//  2. pivot back-substitution — for each matrix row r with pivot column
//     p, overwrite staging row p with row r restricted to the free
//     columns (GF(2) negation is the identity, so no sign work exists).
//
// The transpose of the staging matrix is returned: K rows of length C,
// ordered by ascending free-column index. That ordering is load-bearing —
// downstream generator indices must be reproducible for a given input.
//
// Edge cases: full column rank returns an empty 0×C basis (a valid,
// non-error outcome); a 0×C input means every column is free and the
// basis is the C×C identity.
//
// Complexity: O(r·c + c·k).
func Kernel(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Kernel: %w", ErrNilMatrix)
	}

	// Degenerate input: no constraints at all, the kernel is the full space.
	if m.r == 0 {
		id := &Dense{r: m.c, c: m.c, data: make([]uint8, m.c*m.c)}
		for i := 0; i < m.c; i++ {
			id.data[i*m.c+i] = 1
		}

		return id, nil
	}

	pivots, err := PivotColumns(m)
	if err != nil {
		return nil, fmt.Errorf("Kernel: %w", err)
	}

	// Free columns: ascending complement of the pivot set.
	isPivot := make([]bool, m.c)
	for _, p := range pivots {
		isPivot[p] = true
	}
	free := make([]int, 0, m.c-len(pivots))
	for j := 0; j < m.c; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}
	k := len(free)
	if k == 0 {
		return &Dense{r: 0, c: m.c, data: nil}, nil // full column rank: empty basis
	}

	staging := &Dense{r: m.c, c: k, data: make([]uint8, m.c*k)}

	// Phase 1: free-variable seeding.
	for j, f := range free {
		staging.data[f*k+j] = 1
	}

	// Phase 2: pivot back-substitution.
	for r, p := range pivots {
		for j, f := range free {
			staging.data[p*k+j] = m.bit(r, f)
		}
	}

	basis, err := Transpose(staging)
	if err != nil {
		return nil, fmt.Errorf("Kernel: %w", err)
	}

	return basis, nil
}
