package peano_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrowlake/eqprover/pkg/peano"
)

func TestInternDeduplicatesArith(t *testing.T) {
	a := peano.NewAdd(peano.NewLit(1), peano.NewLit(2))
	b := peano.NewAdd(peano.NewLit(1), peano.NewLit(2))
	assert.Same(t, a, b, "structurally equal arithmetic terms must share one node")
}

func TestStructuralHashIgnoresConstructionPath(t *testing.T) {
	direct := peano.NewSucc(peano.NewLit(0))
	viaVar := peano.NewSucc(peano.NewVar(0))
	assert.NotEqual(t, direct.StructuralHash(), viaVar.StructuralHash())

	again, ok := peano.ArithBuild(uint64(peano.OpSucc), []*peano.Arith{peano.NewLit(0)})
	require.True(t, ok)
	assert.Equal(t, direct.StructuralHash(), again.StructuralHash())
}

func TestAxiomsCompileWithoutError(t *testing.T) {
	rules, err := peano.Axioms()
	require.NoError(t, err)
	// Every axiom but reflexivity and successor-never-self contributes one
	// forward rule each, and those two contribute one forward rule each
	// too (the degenerate bidirectional half is deliberately omitted), so
	// six axioms yield exactly six rules.
	assert.Len(t, rules, 6)
}

func TestAdditiveIdentityRewritesNestedSubterm(t *testing.T) {
	rules, err := peano.Axioms()
	require.NoError(t, err)
	var identity peano.Rule
	for _, r := range rules {
		if r.Name == "additive-identity" {
			identity = r
		}
	}
	require.NotEmpty(t, identity.Name)

	// S(S(0)+0) = S(S(0)); additive identity should reduce the nested
	// "S(0)+0" subterm to "S(0)", proving the two sides syntactically
	// equal.
	lhs := peano.NewSucc(peano.NewAdd(peano.NewSucc(peano.NewLit(0)), peano.NewLit(0)))
	rhs := peano.NewSucc(peano.NewSucc(peano.NewLit(0)))
	e := peano.NewEquality(lhs, rhs)

	successors := peano.Peano{}.RecursiveRewrites(e, identity.From.EmbedPat, identity.To.EmbedPat)
	require.NotEmpty(t, successors)

	found := false
	for _, s := range successors {
		if s.L == rhs {
			found = true
		}
	}
	assert.True(t, found, "expected the rewritten left side to equal the right side")
}

func TestSymmetryDoesNotDecomposePerOperand(t *testing.T) {
	rules, err := peano.Axioms()
	require.NoError(t, err)
	var symmetry peano.Rule
	for _, r := range rules {
		if r.Name == "symmetry" {
			symmetry = r
		}
	}
	require.NotEmpty(t, symmetry.Name)

	e := peano.NewEquality(peano.NewSucc(peano.NewLit(0)), peano.NewLit(0))
	successors := peano.Peano{}.RecursiveRewrites(e, symmetry.From.EmbedPat, symmetry.To.EmbedPat)
	require.Len(t, successors, 1, "symmetry only ever applies at the whole-equality position")
	assert.Equal(t, peano.NewLit(0), successors[0].L)
	assert.Equal(t, peano.NewSucc(peano.NewLit(0)), successors[0].R)
}
