package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrowlake/eqprover/internal/surface"
	"github.com/marrowlake/eqprover/pkg/logic"
	"github.com/marrowlake/eqprover/pkg/peano"
	"github.com/marrowlake/eqprover/pkg/search"
)

func parseTheorem(t *testing.T, src string) *logic.Expr[*peano.Expr] {
	t.Helper()
	node, err := surface.Parse(src)
	require.NoError(t, err)
	expr, err := peano.BuildLogic(node)
	require.NoError(t, err)
	return expr
}

func runTheorem(t *testing.T, src string, budget int) *search.Result[*logic.Expr[*peano.Expr]] {
	t.Helper()
	theorem := parseTheorem(t, src)
	rules, err := peano.Axioms()
	require.NoError(t, err)

	dom := peano.LogicDomain
	cost := search.NewReferenceCost[*logic.Expr[*peano.Expr]](dom.Size)
	goal := logic.ClassicalGoalChecker[*peano.Expr]

	result, err := search.Run(context.Background(), dom, theorem, rules, cost, goal, budget)
	require.NoError(t, err)
	return result
}

// S1: EQ (S(0)) (S(0)) — proven via reflexivity alone.
func TestScenarioS1Reflexivity(t *testing.T) {
	r := runTheorem(t, "EQ (S(0)) (S(0))", 5000)
	assert.Equal(t, search.ProvedTrue, r.Outcome)
}

// S2: EQ (PLUS (S(0)) (0)) (S(0)) — additive identity then reflexivity.
func TestScenarioS2AdditiveIdentity(t *testing.T) {
	r := runTheorem(t, "EQ (PLUS (S(0)) (0)) (S(0))", 5000)
	assert.Equal(t, search.ProvedTrue, r.Outcome)
}

// S3: EQ (PLUS (S(0)) (S(0))) (S(S(0))) — additive successor, then additive
// identity on the nested S(0)+0, then reflexivity.
func TestScenarioS3AdditiveSuccessorThenIdentity(t *testing.T) {
	r := runTheorem(t, "EQ (PLUS (S(0)) (S(0))) (S(S(0)))", 5000)
	assert.Equal(t, search.ProvedTrue, r.Outcome)
}

// S4: EQ (0) (S(0)) — disproven via successor-never-self.
func TestScenarioS4SuccessorNeverSelf(t *testing.T) {
	r := runTheorem(t, "EQ (0) (S(0))", 5000)
	assert.Equal(t, search.ProvedFalse, r.Outcome)
}

// S5: EQ (S(0)) (0) — disproven via symmetry then successor-never-self.
func TestScenarioS5SymmetryThenSuccessorNeverSelf(t *testing.T) {
	r := runTheorem(t, "EQ (S(0)) (0)", 5000)
	assert.Equal(t, search.ProvedFalse, r.Outcome)
}

// S6: EQ (PLUS (/0) (0)) (/0), a theorem with a free variable — proven via
// the reflexivity route after identity. The free /0 behaves exactly like
// any other arithmetic subterm to the matcher: additive identity reduces
// PLUS(x,0) to x regardless of what x is bound to.
func TestScenarioS6FreeVariable(t *testing.T) {
	r := runTheorem(t, "EQ (PLUS (/0) (0)) (/0)", 5000)
	assert.Equal(t, search.ProvedTrue, r.Outcome)
}

// P6: a bounded search either returns within N expansions or NoConclusion.
func TestBudgetBoundsExploration(t *testing.T) {
	r := runTheorem(t, "EQ (S(0)) (0)", 3)
	assert.LessOrEqual(t, r.NodesExplored, 4, "explored must not run away past budget+1")
	if r.Outcome == search.NoConclusion {
		return
	}
	assert.LessOrEqual(t, r.NodesExplored, 3)
}

// Monotonicity: increasing the budget from N to 10N for a theorem provable
// well within N does not change the outcome.
func TestBudgetMonotonicity(t *testing.T) {
	small := runTheorem(t, "EQ (PLUS (S(0)) (S(0))) (S(S(0)))", 200)
	large := runTheorem(t, "EQ (PLUS (S(0)) (S(0))) (S(S(0)))", 2000)
	assert.Equal(t, small.Outcome, large.Outcome)
	assert.Equal(t, search.ProvedTrue, small.Outcome)
}

// P5: the goal checker is deterministic.
func TestGoalCheckerDeterministic(t *testing.T) {
	theorem := parseTheorem(t, "EQ (S(0)) (S(0))")
	v1, ok1 := logic.ClassicalGoalChecker(theorem)
	v2, ok2 := logic.ClassicalGoalChecker(theorem)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, v1, v2)
}
