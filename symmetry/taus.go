package symmetry

import (
	"fmt"

	"github.com/quantara/taper/gf2"
	"github.com/quantara/taper/pauli"
)

// GenerateTaus maps each nullspace basis vector to one symmetry
// generator. A vector of length 2N is read as (X-part | Z-part); for each
// qubit index the bit pair picks a Pauli label via
// (0,0)→I, (1,0)→X, (1,1)→Y, (0,1)→Z, identity labels are dropped, and
// the surviving factors form a Term with coefficient 1.0.
//
// Basis rows are consumed in order, so generator indices inherit the
// kernel's ascending free-column order. An empty basis yields an empty,
// non-nil slice.
//
// Errors: ErrBadQubitCount, ErrDimensionMismatch.
// Complexity: O(K·N).
func GenerateTaus(nullspace *gf2.Dense, numQubits int) ([]Generator, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("GenerateTaus: numQubits=%d: %w", numQubits, ErrBadQubitCount)
	}
	if nullspace == nil {
		return nil, fmt.Errorf("GenerateTaus: %w", gf2.ErrNilMatrix)
	}
	if nullspace.Cols() != 2*numQubits {
		return nil, fmt.Errorf("GenerateTaus: %d columns with %d qubits: %w",
			nullspace.Cols(), numQubits, ErrDimensionMismatch)
	}

	generators := make([]Generator, 0, nullspace.Rows())
	for i := 0; i < nullspace.Rows(); i++ {
		row, err := nullspace.Row(i)
		if err != nil {
			return nil, fmt.Errorf("GenerateTaus: %w", err)
		}
		var term pauli.Term
		for idx := 0; idx < numQubits; idx++ {
			x, z := row[idx], row[numQubits+idx]
			switch {
			case x == 0 && z == 0:
				// identity factor, dropped from the product
			case x == 1 && z == 0:
				term = append(term, pauli.Factor{Op: pauli.X, Wire: idx})
			case x == 1 && z == 1:
				term = append(term, pauli.Factor{Op: pauli.Y, Wire: idx})
			default: // x == 0 && z == 1
				term = append(term, pauli.Factor{Op: pauli.Z, Wire: idx})
			}
		}
		generators = append(generators, Generator{Coeff: 1.0, Term: term})
	}

	return generators, nil
}
