package pauli

import "errors"

var (
	// ErrBadQubitCount indicates a non-positive qubit count.
	ErrBadQubitCount = errors.New("pauli: qubit count must be positive")
	// ErrWireOutOfRange indicates a factor's wire index is outside [0, numQubits).
	ErrWireOutOfRange = errors.New("pauli: wire index out of range")
	// ErrUnknownOp indicates a Pauli label that is not one of I, X, Y, Z.
	ErrUnknownOp = errors.New("pauli: unknown Pauli label")
)
