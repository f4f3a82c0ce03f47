package symmetry

import (
	"fmt"

	"github.com/quantara/taper/gf2"
	"github.com/quantara/taper/pauli"
)

// Generate runs the full symmetry pipeline on a Hamiltonian given as a
// sequence of Pauli terms over numQubits wires:
//
//	terms → binary (Z|X) matrix → in-place GF(2) reduction → zero-row
//	strip → nullspace basis → generators (taus) → sigma-X operators.
//
// The two returned slices are index-aligned and of equal length K, where
// K = 2N − rank of the encoded matrix. A full-rank Hamiltonian yields two
// empty slices and no error — it simply has no Z2 symmetries to exploit.
//
// The whole computation is a deterministic pure function of its inputs:
// no I/O, no randomness, no shared state. Independent Hamiltonians can be
// processed in parallel by separate calls without coordination.
//
// Errors: input contract violations (ErrBadQubitCount, wire range errors
// from the encoder) and ErrDegenerateSet when some generator has no
// uniquely anticommuting qubit; no partial output accompanies an error.
func Generate(terms []pauli.Term, numQubits int) ([]Generator, []SigmaX, error) {
	if numQubits <= 0 {
		return nil, nil, fmt.Errorf("Generate: numQubits=%d: %w", numQubits, ErrBadQubitCount)
	}

	bmat, err := pauli.BinaryMatrix(terms, numQubits)
	if err != nil {
		return nil, nil, fmt.Errorf("Generate: %w", err)
	}

	// The encoded matrix is owned exclusively here, so in-place reduction
	// is unobservable to the caller.
	if err = gf2.ReduceInPlace(bmat); err != nil {
		return nil, nil, fmt.Errorf("Generate: %w", err)
	}
	stripped, err := gf2.StripZeroRows(bmat)
	if err != nil {
		return nil, nil, fmt.Errorf("Generate: %w", err)
	}

	nullspace, err := gf2.Kernel(stripped)
	if err != nil {
		return nil, nil, fmt.Errorf("Generate: %w", err)
	}

	generators, err := GenerateTaus(nullspace, numQubits)
	if err != nil {
		return nil, nil, fmt.Errorf("Generate: %w", err)
	}
	sigmas, err := GeneratePaulis(generators, numQubits)
	if err != nil {
		return nil, nil, fmt.Errorf("Generate: %w", err)
	}

	return generators, sigmas, nil
}
