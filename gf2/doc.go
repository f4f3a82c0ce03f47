// Package gf2 provides dense bit matrices and exact linear algebra over
// GF(2), the field with two elements (addition = XOR, multiplication = AND).
//
// 🚀 What is gf2?
//
//	The numeric core of the taper library:
//	  • Dense — row-major flat storage of 0/1 bytes, zero-row friendly
//	  • ReduceInPlace — the diagonal-walk row reduction used to find
//	    independent symmetry constraints
//	  • Kernel — a basis of the right nullspace of a reduced matrix
//	  • Rank — plain Gaussian rank, for independence checks
//	  • ToGonum / FromGonum — interop with gonum's float64 matrices
//
// ⚙️ Usage:
//
//	m, _ := gf2.NewDenseFromRows([][]uint8{{1, 0, 1}, {0, 1, 1}})
//	_ = gf2.ReduceInPlace(m)           // exclusive, in-place
//	s, _ := gf2.StripZeroRows(m)       // drop all-zero rows
//	basis, _ := gf2.Kernel(s)          // rows span the nullspace
//
// Determinism:
//
//	Every routine walks rows and columns in fixed ascending order; pivot
//	ties resolve to the lowest row index and free columns are emitted in
//	ascending column order. Identical inputs always produce identical
//	outputs, bit for bit.
//
// ReduceInPlace deliberately reproduces a diagonal-walk eliminator rather
// than a textbook RREF: it performs min(R, C) steps pairing row i with
// column i, and uses row i as the eliminator even when its diagonal entry
// is zero. Downstream symmetry extraction depends on that exact behavior;
// see the package tests for the literal matrices it is pinned to.
//
// All arithmetic is exact integer arithmetic modulo 2 — no floating-point
// tolerances exist anywhere in this package.
package gf2
