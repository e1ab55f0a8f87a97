package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrowlake/eqprover/pkg/term"
)

// leaf is a tiny Hashable used to exercise the store without pulling in a
// whole domain. Two leaves with the same value hash identically.
type leaf struct {
	value uint64
}

func (l leaf) StructuralHash() uint64 {
	return term.Mix(term.MustOpcode("leaf"), l.value)
}

func TestStoreInternDeduplicates(t *testing.T) {
	s := term.NewStore[leaf]()

	a := s.Intern(leaf{value: 7})
	b := s.Intern(leaf{value: 7})
	c := s.Intern(leaf{value: 8})

	assert.Same(t, a, b, "intern(intern(x)) must yield the same reference")
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, s.Len())
}

func TestStoreGetLooksUpWithoutInserting(t *testing.T) {
	s := term.NewStore[leaf]()
	h := leaf{value: 3}.StructuralHash()

	_, ok := s.Get(h)
	require.False(t, ok)

	inserted := s.Intern(leaf{value: 3})
	got, ok := s.Get(h)
	require.True(t, ok)
	assert.Same(t, inserted, got)
}

func TestStoreClearEmptiesTheMap(t *testing.T) {
	s := term.NewStore[leaf]()
	s.Intern(leaf{value: 1})
	s.Intern(leaf{value: 2})
	require.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestStoreVerifyDetectsStructuralEquality(t *testing.T) {
	s := term.NewStore[leaf]()
	n := s.Intern(leaf{value: 42})
	assert.True(t, s.Verify(n))
	assert.False(t, s.Verify(nil))
}

func TestMixIsSensitiveToOpcodeAndChildren(t *testing.T) {
	opA := term.MustOpcode("mix-test-a")
	opB := term.MustOpcode("mix-test-b")

	assert.NotEqual(t, term.Mix(opA, 1, 2), term.Mix(opB, 1, 2))
	assert.NotEqual(t, term.Mix(opA, 1, 2), term.Mix(opA, 2, 1))
	assert.Equal(t, term.Mix(opA, 1, 2), term.Mix(opA, 1, 2))
}

func TestMustOpcodeIsStablePerName(t *testing.T) {
	a := term.MustOpcode("stable-name")
	b := term.MustOpcode("stable-name")
	c := term.MustOpcode("different-name")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
