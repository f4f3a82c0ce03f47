// Package pauli types: the closed Pauli operator enumeration plus the
// Factor and Term value types shared by the encoder and its callers.
package pauli

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a single-qubit Pauli operator. The enumeration is closed:
// exhaustive switches over Op are the only sanctioned way to branch on it.
type Op uint8

const (
	// I is the identity operator.
	I Op = iota
	// X is the Pauli-X operator.
	X
	// Y is the Pauli-Y operator.
	Y
	// Z is the Pauli-Z operator.
	Z
)

// Valid reports whether op is one of the four defined operators.
func (op Op) Valid() bool {
	return op <= Z
}

// String renders the canonical one-letter label.
func (op Op) String() string {
	switch op {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// ParseOp parses a Pauli label. Both the one-letter form ("X") and the
// long form used by circuit frameworks ("PauliX", "Identity") are accepted.
// Returns ErrUnknownOp for anything else.
func ParseOp(s string) (Op, error) {
	switch s {
	case "I", "Identity":
		return I, nil
	case "X", "PauliX":
		return X, nil
	case "Y", "PauliY":
		return Y, nil
	case "Z", "PauliZ":
		return Z, nil
	default:
		return I, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
	}
}

// Factor is one single-qubit factor of a term: an operator on a wire.
type Factor struct {
	Op   Op
	Wire int
}

// String renders the factor as label+wire, e.g. "X1" or "Z0".
func (f Factor) String() string {
	return f.Op.String() + strconv.Itoa(f.Wire)
}

// Term is an ordered tensor product of factors over distinct wires.
// An empty Term is the identity. Terms are value-like: the library never
// mutates a Term after receiving it.
type Term []Factor

// String renders factors separated by spaces, e.g. "Z0 X2 X3".
// The empty (identity) term renders as "I".
func (t Term) String() string {
	if len(t) == 0 {
		return "I"
	}
	parts := make([]string, len(t))
	for i, f := range t {
		parts[i] = f.String()
	}

	return strings.Join(parts, " ")
}

// ParseTerm parses the String form back into a Term: space-separated
// label+wire tokens ("Z0 X2 X3"). "I" and the empty string both parse to
// the identity term. One-letter labels only; long labels belong to ParseOp.
func ParseTerm(s string) (Term, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "I" {
		return Term{}, nil
	}
	var t Term
	for _, tok := range strings.Fields(s) {
		if len(tok) < 2 {
			return nil, fmt.Errorf("ParseTerm(%q): token %q: %w", s, tok, ErrUnknownOp)
		}
		op, err := ParseOp(tok[:1])
		if err != nil {
			return nil, fmt.Errorf("ParseTerm(%q): %w", s, ErrUnknownOp)
		}
		wire, err := strconv.Atoi(tok[1:])
		if err != nil || wire < 0 {
			return nil, fmt.Errorf("ParseTerm(%q): token %q: %w", s, tok, ErrWireOutOfRange)
		}
		t = append(t, Factor{Op: op, Wire: wire})
	}

	return t, nil
}
