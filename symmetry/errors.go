package symmetry

import "errors"

var (
	// ErrBadQubitCount indicates a non-positive qubit count.
	ErrBadQubitCount = errors.New("symmetry: qubit count must be positive")
	// ErrDimensionMismatch indicates a nullspace width that is not twice the qubit count.
	ErrDimensionMismatch = errors.New("symmetry: nullspace width must equal 2*numQubits")
	// ErrDegenerateSet indicates a generator with no uniquely anticommuting
	// qubit — the symmetry set is not independent and cannot be tapered.
	// Deterministic for a given input; retrying cannot help.
	ErrDegenerateSet = errors.New("symmetry: no unique anticommuting qubit for generator")
)
