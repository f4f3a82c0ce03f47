package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantara/taper/pauli"
	"github.com/quantara/taper/symmetry"
)

// gens builds generators from term strings, failing the test on parse errors.
func gens(t *testing.T, terms ...string) []symmetry.Generator {
	t.Helper()
	out := make([]symmetry.Generator, len(terms))
	for i, s := range terms {
		term, err := pauli.ParseTerm(s)
		require.NoError(t, err)
		out[i] = symmetry.Generator{Coeff: 1.0, Term: term}
	}

	return out
}

// sigmaWires renders sigma operators as their wire indices.
func sigmaWires(sigmas []symmetry.SigmaX) []int {
	out := make([]int, len(sigmas))
	for i, s := range sigmas {
		out[i] = s.Wire
	}

	return out
}

// TestGeneratePaulis_ZPairGenerators pins sigma selection on a Z-pair
// generator set: Z0Z1, Z0Z2, Z0Z3 → X1, X2, X3. Wire 0 is
// shared by all three generators, so the first unique column per row is
// the generator's second wire.
func TestGeneratePaulis_ZPairGenerators(t *testing.T) {
	sigmas, err := symmetry.GeneratePaulis(gens(t, "Z0 Z1", "Z0 Z2", "Z0 Z3"), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, sigmaWires(sigmas))
	assert.Equal(t, "X1", sigmas[0].String())
	assert.Equal(t, pauli.Factor{Op: pauli.X, Wire: 2}, sigmas[1].Factor())
}

// TestGeneratePaulis_FirstQualifyingColumnWins verifies the ascending
// tie-break: a generator with several unique anticommuting wires gets the
// lowest one.
func TestGeneratePaulis_FirstQualifyingColumnWins(t *testing.T) {
	sigmas, err := symmetry.GeneratePaulis(gens(t, "Z1 Z2"), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, sigmaWires(sigmas), "wire 1 qualifies before wire 2")
}

// TestGeneratePaulis_YCountsAsZSupport verifies a Y factor anticommutes
// with X and therefore qualifies.
func TestGeneratePaulis_YCountsAsZSupport(t *testing.T) {
	sigmas, err := symmetry.GeneratePaulis(gens(t, "Y2"), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, sigmaWires(sigmas))
}

// TestGeneratePaulis_DegenerateSet verifies a generator with no Z-support
// is surfaced as an error rather than silently skipped: no single-qubit X
// can anticommute with a pure-X generator.
func TestGeneratePaulis_DegenerateSet(t *testing.T) {
	_, err := symmetry.GeneratePaulis(gens(t, "X1"), 2)
	assert.ErrorIs(t, err, symmetry.ErrDegenerateSet)

	// a shared column is not unique either: both generators act on wire 0
	_, err = symmetry.GeneratePaulis(gens(t, "Z0", "Z0 Z1"), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, symmetry.ErrDegenerateSet)
}

// TestGeneratePaulis_EmptySet verifies the no-symmetry boundary passes
// through as an empty, non-nil slice.
func TestGeneratePaulis_EmptySet(t *testing.T) {
	sigmas, err := symmetry.GeneratePaulis(nil, 3)
	require.NoError(t, err)
	assert.NotNil(t, sigmas)
	assert.Empty(t, sigmas)
}

// TestGeneratePaulis_ContractViolations verifies fail-fast input checks.
func TestGeneratePaulis_ContractViolations(t *testing.T) {
	_, err := symmetry.GeneratePaulis(nil, 0)
	assert.ErrorIs(t, err, symmetry.ErrBadQubitCount)

	_, err = symmetry.GeneratePaulis(gens(t, "Z5"), 2)
	assert.ErrorIs(t, err, pauli.ErrWireOutOfRange, "generator wires outside [0,N) surface the encoder error")
}
