// Package pauli models single-qubit Pauli operators, multi-qubit Pauli
// terms, and their symplectic (binary) encoding.
//
// A Term is an ordered list of (operator, wire) factors, conceptually a
// tensor product over distinct wires. BinaryMatrix turns a sequence of
// terms into an R×2N bit matrix over GF(2): for each factor, a Z or Y
// operator on wire w sets column w (the Z-support half), and an X or Y
// operator sets column N+w (the X-support half). Y sets both, since
// Y = iXZ up to phase — the phase is intentionally discarded; only the
// symplectic support matters for commutation structure.
//
// The Op enumeration is closed: every encode/decode site switches
// exhaustively over I, X, Y, Z, so a missing label is a compile-time
// smell rather than a silent misencoding.
//
// All functions are deterministic and allocation-bounded; terms are
// treated as immutable once handed to the encoder.
package pauli
