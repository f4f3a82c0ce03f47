// Package symmetry types: the value types crossing the package boundary.
package symmetry

import (
	"fmt"

	"github.com/quantara/taper/pauli"
)

// Generator is one Z2 symmetry generator (a tau): a single weighted Pauli
// string. The builder always emits Coeff == 1.0; the coefficient exists
// only so downstream operator algebra can consume generators as one-term
// weighted sums. An empty Term is the global identity.
type Generator struct {
	Coeff float64
	Term  pauli.Term
}

// String renders the weighted-term notation, e.g. "(1.0) [Z0 X2 X3]".
func (g Generator) String() string {
	return fmt.Sprintf("(%.1f) [%s]", g.Coeff, g.Term)
}

// SigmaX is a single-qubit Pauli-X operator on a specific wire, paired
// index-for-index with a Generator.
type SigmaX struct {
	Wire int
}

// String renders the operator as e.g. "X3".
func (s SigmaX) String() string {
	return pauli.Factor{Op: pauli.X, Wire: s.Wire}.String()
}

// Factor returns the operator as a pauli.Factor, the form the encoder and
// downstream circuit builders consume.
func (s SigmaX) Factor() pauli.Factor {
	return pauli.Factor{Op: pauli.X, Wire: s.Wire}
}
