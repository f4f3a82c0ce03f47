package symmetry

import (
	"fmt"

	"github.com/quantara/taper/pauli"
)

// GeneratePaulis selects, for each generator, the wire of a single-qubit
// Pauli-X operator that anticommutes with that generator and commutes
// with every other one.
//
// The generators' terms are re-encoded as a K×2N binary matrix; for
// generator row g the qubit columns 0..N-1 (the Z-support half) are
// scanned in ascending order, and the first column where row g carries a
// 1 and every other row carries a 0 becomes the sigma wire. A 1 in the
// Z-support half means the generator acts as Z or Y there, so X on that
// wire anticommutes with it; zeros everywhere else mean the remaining
// generators act as I or X there and commute. The first qualifying
// column always wins — the tie-break is part of the output contract.
//
// A generator with no qualifying column yields ErrDegenerateSet carrying
// the generator index and dimensions; no partial result is returned.
// An empty generator set yields an empty, non-nil slice.
//
// Errors: ErrBadQubitCount, ErrDegenerateSet, plus encoder contract
// violations surfaced from pauli.BinaryMatrix.
// Complexity: O(K²·N).
func GeneratePaulis(generators []Generator, numQubits int) ([]SigmaX, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("GeneratePaulis: numQubits=%d: %w", numQubits, ErrBadQubitCount)
	}

	terms := make([]pauli.Term, len(generators))
	for i, g := range generators {
		terms[i] = g.Term
	}
	bmat, err := pauli.BinaryMatrix(terms, numQubits)
	if err != nil {
		return nil, fmt.Errorf("GeneratePaulis: %w", err)
	}

	sigmas := make([]SigmaX, 0, len(generators))
	for row := 0; row < bmat.Rows(); row++ {
		wire := -1
		for col := 0; col < numQubits && wire < 0; col++ {
			v, _ := bmat.At(row, col)
			if v == 0 {
				continue
			}
			unique := true
			for other := 0; other < bmat.Rows(); other++ {
				if other == row {
					continue
				}
				ov, _ := bmat.At(other, col)
				if ov != 0 {
					unique = false
					break
				}
			}
			if unique {
				wire = col
			}
		}
		if wire < 0 {
			return nil, fmt.Errorf("GeneratePaulis: generator %d of %d (%d qubits): %w",
				row, len(generators), numQubits, ErrDegenerateSet)
		}
		sigmas = append(sigmas, SigmaX{Wire: wire})
	}

	return sigmas, nil
}
