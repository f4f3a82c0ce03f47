// Package symmetry assembles Z2 symmetry generators from the GF(2)
// nullspace of an encoded Hamiltonian, and pairs each generator with a
// single-qubit Pauli-X operator that anticommutes with it alone.
//
// 🚀 What is symmetry?
//
//	The top of the tapering pipeline:
//	  • GenerateTaus   — nullspace basis vectors → Pauli-string generators
//	  • GeneratePaulis — one anticommuting sigma-X wire per generator
//	  • Generate       — the whole chain: encode → reduce → strip →
//	    kernel → taus → paulis
//
// Each nullspace vector of length 2N is read as (X-part | Z-part): for
// qubit i the bit pair (x, z) maps to a label via
//
//	(0,0) → I    (1,0) → X    (1,1) → Y    (0,1) → Z
//
// and identity labels are dropped from the product. Note the halves are
// interpreted in the opposite order to the encoder's (Z|X) layout — the
// symplectic pairing swaps them, and that asymmetry is intentional.
//
// Sigma-X selection scans the Z-support half of the generators' own
// binary encoding left to right and picks, per generator, the first
// column where that generator carries a 1 and every other generator a 0.
// A generator with no such column makes the set unusable for tapering and
// is reported as ErrDegenerateSet with the generator index — never
// silently skipped.
//
// Output contract: the generator slice and the sigma slice are always the
// same length and index-aligned; sigmas[i] anticommutes with gens[i] and
// commutes with gens[j] for every j ≠ i.
package symmetry
