// Package taper generates the Z2 symmetries of a qubit Hamiltonian — the
// exact, finite-field machinery behind qubit tapering.
//
// 🚀 What is taper?
//
//	A small, deterministic library that turns a sum of Pauli terms into
//	its symmetry generators over the binary field GF(2):
//		• Symplectic encoding: Pauli terms → binary (Z|X) matrix
//		• Row reduction: in-place elimination over GF(2)
//		• Kernel extraction: a basis of the nullspace
//		• Symmetry assembly: generators (taus) plus one anticommuting
//		  single-qubit Pauli-X per generator
//
// ✨ Why choose taper?
//
//   - Bit-exact – no floating point anywhere near the linear algebra
//   - Deterministic – fixed pivot and tie-break order, reproducible output
//   - Pure functions – no I/O, no goroutines, no shared state
//
// Everything is organized under three subpackages:
//
//	pauli/    — Pauli operator enumeration, terms and the binary encoder
//	gf2/      — dense bit matrices: reduction, kernel, rank, gonum bridge
//	symmetry/ — generator construction and the end-to-end pipeline
//
// Quick example:
//
//	terms := []pauli.Term{
//	  {{Op: pauli.Z, Wire: 0}, {Op: pauli.Z, Wire: 1}},
//	  {{Op: pauli.Z, Wire: 0}, {Op: pauli.Z, Wire: 2}},
//	}
//	gens, sigmas, err := symmetry.Generate(terms, 3)
//
// The generator list and the sigma list are index-aligned: sigmas[i]
// anticommutes with gens[i] and commutes with every other generator,
// which is exactly what a downstream Clifford construction needs.
package taper
