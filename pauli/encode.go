package pauli

import (
	"fmt"

	"github.com/quantara/taper/gf2"
)

// BinaryMatrix encodes terms as an R×2N bit matrix over GF(2), R being
// the number of terms and N the declared qubit count.
//
// Column layout (binding for every consumer downstream):
//   - columns [0, N)  — Z-support: bit w set iff the term acts as Z or Y on wire w;
//   - columns [N, 2N) — X-support: bit N+w set iff the term acts as X or Y on wire w.
//
// Single-factor terms go through the same uniform factor loop as
// multi-factor terms; an identity term contributes an all-zero row.
//
// Errors: ErrBadQubitCount when numQubits <= 0; ErrWireOutOfRange when a
// factor's wire is outside [0, numQubits); ErrUnknownOp on an Op value
// outside the enumeration.
//
// Complexity: O(R·N) allocation + O(total factors) bit writes.
func BinaryMatrix(terms []Term, numQubits int) (*gf2.Dense, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("BinaryMatrix: numQubits=%d: %w", numQubits, ErrBadQubitCount)
	}
	m, err := gf2.NewDense(len(terms), 2*numQubits)
	if err != nil {
		return nil, fmt.Errorf("BinaryMatrix: %w", err)
	}

	for ti, term := range terms {
		for fi, f := range term {
			if f.Wire < 0 || f.Wire >= numQubits {
				return nil, fmt.Errorf("BinaryMatrix: term %d factor %d wire %d with %d qubits: %w",
					ti, fi, f.Wire, numQubits, ErrWireOutOfRange)
			}
			// Set is bounds-safe; errors cannot occur after wire validation.
			switch f.Op {
			case I:
				// no symplectic support
			case X:
				_ = m.Set(ti, numQubits+f.Wire, 1)
			case Y:
				// Y = iXZ up to phase: both supports
				_ = m.Set(ti, f.Wire, 1)
				_ = m.Set(ti, numQubits+f.Wire, 1)
			case Z:
				_ = m.Set(ti, f.Wire, 1)
			default:
				return nil, fmt.Errorf("BinaryMatrix: term %d factor %d: %w", ti, fi, ErrUnknownOp)
			}
		}
	}

	return m, nil
}
