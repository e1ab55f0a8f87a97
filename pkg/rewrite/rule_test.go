package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrowlake/eqprover/pkg/pattern"
	"github.com/marrowlake/eqprover/pkg/peano"
	"github.com/marrowlake/eqprover/pkg/rewrite"
)

// TestApplyRecursiveBothDirections exercises Direction = Both: a rule whose
// from/to swap the equality's two operands should fire both forward (match
// from, apply to) and backward (match to, apply from), each producing the
// swapped equality, per §4.5's forward-before-backward enumeration.
func TestApplyRecursiveBothDirections(t *testing.T) {
	swap := rewrite.Rule[*peano.Expr, peano.Pattern]{
		Name:      "test-swap",
		From:      peano.Pattern{L: pattern.Var[*peano.Arith](0), R: pattern.Var[*peano.Arith](1)},
		To:        peano.Pattern{L: pattern.Var[*peano.Arith](1), R: pattern.Var[*peano.Arith](0)},
		Direction: rewrite.Both,
	}

	e := peano.NewEquality(peano.NewSucc(peano.NewLit(0)), peano.NewLit(0))
	want := peano.NewEquality(peano.NewLit(0), peano.NewSucc(peano.NewLit(0)))

	successors := swap.ApplyRecursive(peano.Peano{}, e)
	assert.Len(t, successors, 2, "both the forward and backward application should fire")
	for _, s := range successors {
		assert.Same(t, want, s)
	}
}

// TestApplyRecursiveForwardOnlyOmitsBackward confirms Direction = Forward
// never tries the rule in reverse, distinguishing it from Both.
func TestApplyRecursiveForwardOnlyOmitsBackward(t *testing.T) {
	forward := rewrite.Rule[*peano.Expr, peano.Pattern]{
		Name:      "test-forward",
		From:      peano.Pattern{L: pattern.Var[*peano.Arith](0), R: pattern.Var[*peano.Arith](1)},
		To:        peano.Pattern{L: pattern.Var[*peano.Arith](1), R: pattern.Var[*peano.Arith](0)},
		Direction: rewrite.Forward,
	}

	e := peano.NewEquality(peano.NewSucc(peano.NewLit(0)), peano.NewLit(0))
	successors := forward.ApplyRecursive(peano.Peano{}, e)
	assert.Len(t, successors, 1, "forward direction fires exactly once")
}
