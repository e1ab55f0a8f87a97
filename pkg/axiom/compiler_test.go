package axiom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrowlake/eqprover/internal/surface"
	"github.com/marrowlake/eqprover/pkg/axiom"
	"github.com/marrowlake/eqprover/pkg/peano"
	"github.com/marrowlake/eqprover/pkg/rewrite"
)

func compile(t *testing.T, text string) ([]peano.Rule, error) {
	t.Helper()
	node, err := surface.Parse(text)
	require.NoError(t, err)
	expr, err := peano.BuildLogic(node)
	require.NoError(t, err)
	return axiom.Compile(peano.LogicDomain, "test", expr, peano.VarsIn)
}

func TestCompileBiconditionalProducesOneBothDirectionRule(t *testing.T) {
	rules, err := compile(t, "FORALL (FORALL (IFF (EQ (/1) (/0)) (EQ (/0) (/1))))")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, rewrite.Both, rules[0].Direction)
}

func TestCompileExistentialIsUnsupported(t *testing.T) {
	_, err := compile(t, "EXISTS (EQ (/0) (0))")
	require.Error(t, err)
	assert.ErrorIs(t, err, axiom.ErrExistentialUnsupported)
}

func TestCompileRejectsReplacementVariableAbsentFromLHS(t *testing.T) {
	// /1 appears only on the IMPLIES's right-hand side.
	_, err := compile(t, "FORALL (IMPLIES (EQ (/0) (0)) (EQ (/0) (/1)))")
	require.Error(t, err)
	assert.ErrorIs(t, err, axiom.ErrRuleVariableInvariant)
}

func TestCompileDomainEqualityOmitsBiconditionalWhenOperandsIdentical(t *testing.T) {
	rules, err := compile(t, "FORALL (EQ (/0) (/0))")
	require.NoError(t, err)
	require.Len(t, rules, 1, "reflexivity's biconditional half would only rewrite a term to itself")
	assert.Equal(t, rewrite.Forward, rules[0].Direction)
}

func TestCompileDomainEqualityEmitsBiconditionalWhenOperandsDiffer(t *testing.T) {
	rules, err := compile(t, "FORALL (EQ (/0) (S(/0)))")
	require.NoError(t, err)
	require.Len(t, rules, 2, "a non-reflexive domain equality gets both the embed-to-true and the a<->b rule")

	var sawForward, sawBoth bool
	for _, r := range rules {
		switch r.Direction {
		case rewrite.Forward:
			sawForward = true
		case rewrite.Both:
			sawBoth = true
		}
	}
	assert.True(t, sawForward, "expected the embed-pattern-to-true collapse")
	assert.True(t, sawBoth, "expected the domain-level biconditional a<->b rule")
}
