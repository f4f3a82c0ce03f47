package gf2

import "fmt"

// ReduceInPlace row-reduces m over GF(2) with the diagonal-walk
// eliminator. The matrix is mutated in place; ownership must be exclusive
// for the duration of the call. Rows may be physically swapped, but no
// permutation beyond the matrix content is visible to the caller.
//
// Algorithm, for each diagonal position (i, i) over min(R, C) steps:
//  1. Pivot selection: the lowest row index k >= i with a 1 in column i;
//     when the column tail is all zero, k stays at i and the swap is a no-op.
//  2. Swap row k into position i.
//  3. XOR the suffix [i, C) of row i into every other row carrying a 1 in
//     column i — above and below at once, with row i itself excluded so
//     the eliminator is never cancelled against itself.
//
// Step 3 runs even when row i has a zero in column i; the row still acts
// as the eliminator for that column. The resulting form is therefore not
// always a textbook RREF, and that exact behavior is load-bearing: the
// symmetry generators extracted downstream are pinned to it bit for bit.
//
// All arithmetic is modulo 2 on exact 0/1 bytes; no tolerances exist.
// Complexity: O(min(R,C)·R·C) bit operations, O(1) extra memory.
func ReduceInPlace(m *Dense) error {
	if m == nil {
		return fmt.Errorf("ReduceInPlace: %w", ErrNilMatrix)
	}

	steps := m.r
	if m.c < steps {
		steps = m.c
	}
	for i := 0; i < steps; i++ {
		// Pivot: first row at or below i with a nonzero entry in column i.
		krow := i
		for r := i; r < m.r; r++ {
			if m.bit(r, i) == 1 {
				krow = r
				break
			}
		}
		m.swapRows(i, krow)

		// Eliminate column i from every other row holding a 1 there.
		// Row i is untouched during the sweep, so sequential XOR matches
		// the simultaneous update exactly.
		prow := m.rowSlice(i)
		for r := 0; r < m.r; r++ {
			if r == i || m.bit(r, i) == 0 {
				continue
			}
			row := m.rowSlice(r)
			for c := i; c < m.c; c++ {
				row[c] ^= prow[c]
			}
		}
	}

	return nil
}

// Reduced returns the reduction of m as a new matrix, leaving m intact.
// Complexity: O(r·c) copy plus the ReduceInPlace cost.
func Reduced(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Reduced: %w", ErrNilMatrix)
	}
	out := m.Clone()
	if err := ReduceInPlace(out); err != nil {
		return nil, err
	}

	return out, nil
}
