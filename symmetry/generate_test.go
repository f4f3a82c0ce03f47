package symmetry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quantara/taper/pauli"
	"github.com/quantara/taper/symmetry"
)

// fixtureCase is one named Hamiltonian with its expected pipeline output.
type fixtureCase struct {
	Name       string   `yaml:"name"`
	Qubits     int      `yaml:"qubits"`
	Terms      []string `yaml:"terms"`
	Generators []string `yaml:"generators"`
	SigmaWires []int    `yaml:"sigma_wires"`
	Degenerate bool     `yaml:"degenerate"`
}

type fixtureFile struct {
	Cases []fixtureCase `yaml:"cases"`
}

// loadFixtures reads the YAML Hamiltonian corpus from testdata.
func loadFixtures(t *testing.T) []fixtureCase {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "hamiltonians.yaml"))
	require.NoError(t, err, "fixture file must be readable")
	var f fixtureFile
	require.NoError(t, yaml.Unmarshal(raw, &f), "fixture file must parse")
	require.NotEmpty(t, f.Cases)

	return f.Cases
}

// parseTerms converts fixture term strings into pauli terms.
func parseTerms(t *testing.T, specs []string) []pauli.Term {
	t.Helper()
	terms := make([]pauli.Term, len(specs))
	for i, s := range specs {
		term, err := pauli.ParseTerm(s)
		require.NoError(t, err, "term %q must parse", s)
		terms[i] = term
	}

	return terms
}

// TestGenerate_Fixtures runs the end-to-end pipeline over the YAML
// Hamiltonian corpus and compares generators and sigma wires exactly.
func TestGenerate_Fixtures(t *testing.T) {
	for _, tc := range loadFixtures(t) {
		t.Run(tc.Name, func(t *testing.T) {
			gens, sigmas, err := symmetry.Generate(parseTerms(t, tc.Terms), tc.Qubits)
			if tc.Degenerate {
				assert.ErrorIs(t, err, symmetry.ErrDegenerateSet)
				assert.Nil(t, gens, "no partial output on failure")
				assert.Nil(t, sigmas, "no partial output on failure")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Generators, genStrings(gens))
			assert.Equal(t, tc.SigmaWires, sigmaWires(sigmas))
			assert.Len(t, sigmas, len(gens), "outputs must be index-aligned")
		})
	}
}

// TestGenerate_ThreeTermScenario verifies the pipeline surfaces the
// degenerate set of the three-term Hamiltonian: its kernel contains the
// pure-X generator X1, which no single-qubit X anticommutes with.
func TestGenerate_ThreeTermScenario(t *testing.T) {
	terms := []pauli.Term{
		{{Op: pauli.Z, Wire: 0}, {Op: pauli.X, Wire: 1}},
		{{Op: pauli.Z, Wire: 0}, {Op: pauli.Y, Wire: 2}},
		{{Op: pauli.X, Wire: 0}, {Op: pauli.Y, Wire: 3}},
	}
	_, _, err := symmetry.Generate(terms, 4)
	assert.ErrorIs(t, err, symmetry.ErrDegenerateSet)
}

// TestGenerate_NoSymmetries verifies the full-rank boundary: empty
// generator and sigma lists, no error.
func TestGenerate_NoSymmetries(t *testing.T) {
	terms := []pauli.Term{
		{{Op: pauli.X, Wire: 0}},
		{{Op: pauli.Z, Wire: 0}},
	}
	gens, sigmas, err := symmetry.Generate(terms, 1)
	require.NoError(t, err)
	assert.Empty(t, gens)
	assert.Empty(t, sigmas)
	assert.NotNil(t, gens)
	assert.NotNil(t, sigmas)
}

// TestGenerate_SingleTerm verifies the single-constraint boundary on one
// qubit: 2N−1 = 1 generator, with its anticommuting partner found.
func TestGenerate_SingleTerm(t *testing.T) {
	gens, sigmas, err := symmetry.Generate([]pauli.Term{{{Op: pauli.Z, Wire: 0}}}, 1)
	require.NoError(t, err)
	require.Len(t, gens, 1)
	assert.Equal(t, "Z0", gens[0].Term.String())
	assert.Equal(t, []int{0}, sigmaWires(sigmas))
}

// TestGenerate_ContractViolations verifies encoder errors propagate with
// no partial output.
func TestGenerate_ContractViolations(t *testing.T) {
	_, _, err := symmetry.Generate(nil, 0)
	assert.ErrorIs(t, err, symmetry.ErrBadQubitCount)

	_, _, err = symmetry.Generate([]pauli.Term{{{Op: pauli.Z, Wire: 7}}}, 2)
	assert.ErrorIs(t, err, pauli.ErrWireOutOfRange)
}
