package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrowlake/eqprover/pkg/pattern"
	"github.com/marrowlake/eqprover/pkg/term"
)

// toy is a minimal hash-consed expression tree used to exercise the matcher
// in isolation: either a leaf literal or a binary "pair" compound.
type toy struct {
	isLeaf bool
	lit    uint64
	a, b   *toy
}

var pairOp = term.MustOpcode("toy-pair")

func (t *toy) hash() uint64 {
	if t.isLeaf {
		return term.Mix(term.MustOpcode("toy-leaf"), t.lit)
	}
	return term.Mix(pairOp, t.a.hash(), t.b.hash())
}

func leaf(n uint64) *toy { return &toy{isLeaf: true, lit: n} }
func pair(a, b *toy) *toy { return &toy{a: a, b: b} }

func hashFn(t *toy) uint64 { return t.hash() }

func decompose(t *toy) (uint64, []*toy, bool) {
	if t.isLeaf {
		return 0, nil, false
	}
	return uint64(pairOp), []*toy{t.a, t.b}, true
}

func build(op uint64, children []*toy) (*toy, bool) {
	if op != uint64(pairOp) || len(children) != 2 {
		return nil, false
	}
	return pair(children[0], children[1]), true
}

func TestMatchVarBindsAndReuses(t *testing.T) {
	p := pattern.Compound[*toy](pairOp, pattern.Var[*toy](0), pattern.Var[*toy](0))

	sub, ok := pattern.Match(pair(leaf(1), leaf(1)), p, hashFn, decompose)
	require.True(t, ok)
	assert.Equal(t, uint64(1), sub[0].lit)

	_, ok = pattern.Match(pair(leaf(1), leaf(2)), p, hashFn, decompose)
	assert.False(t, ok, "repeated variable must bind to structurally equal expressions")
}

func TestMatchWildcardAlwaysSucceeds(t *testing.T) {
	p := pattern.Compound[*toy](pairOp, pattern.Wildcard[*toy](), pattern.Wildcard[*toy]())
	sub, ok := pattern.Match(pair(leaf(9), leaf(10)), p, hashFn, decompose)
	require.True(t, ok)
	assert.Empty(t, sub)
}

func TestMatchConstOnlyMatchesEqualExpression(t *testing.T) {
	p := pattern.Const[*toy](leaf(5))
	_, ok := pattern.Match(leaf(5), p, hashFn, decompose)
	assert.True(t, ok)

	_, ok = pattern.Match(leaf(6), p, hashFn, decompose)
	assert.False(t, ok)
}

func TestMatchCompoundFailsOnAtom(t *testing.T) {
	p := pattern.Compound[*toy](pairOp, pattern.Wildcard[*toy](), pattern.Wildcard[*toy]())
	_, ok := pattern.Match(leaf(1), p, hashFn, decompose)
	assert.False(t, ok, "an atom never decomposes, so a compound pattern cannot match it")
}

func TestApplyReconstructsFromBindings(t *testing.T) {
	p := pattern.Compound[*toy](pairOp, pattern.Var[*toy](0), pattern.Const[*toy](leaf(3)))
	sub := pattern.Substitution[*toy]{0: leaf(7)}

	out, ok := pattern.Apply(p, sub, build)
	require.True(t, ok)
	assert.Equal(t, uint64(7), out.a.lit)
	assert.Equal(t, uint64(3), out.b.lit)
}

func TestApplyFailsOnUnboundVariable(t *testing.T) {
	p := pattern.Var[*toy](0)
	_, ok := pattern.Apply(p, pattern.Substitution[*toy]{}, build)
	assert.False(t, ok)
}

func TestApplyFailsOnWildcard(t *testing.T) {
	_, ok := pattern.Apply(pattern.Wildcard[*toy](), pattern.Substitution[*toy]{}, build)
	assert.False(t, ok, "wildcard must never appear in a replacement")
}

// TestRoundtrip exercises property P3: applying the substitution produced
// by a successful match reconstructs the original expression.
func TestRoundtrip(t *testing.T) {
	e := pair(leaf(1), pair(leaf(2), leaf(3)))
	p := pattern.Compound[*toy](pairOp, pattern.Var[*toy](0), pattern.Var[*toy](1))

	assert.True(t, pattern.Roundtrip(e, p, hashFn, decompose, build))
}
