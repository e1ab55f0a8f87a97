// Package pattern implements the pattern language and the structural
// matcher/substitution-applier shared by every domain and by the logical
// layer. A Pattern[E] is generic over the expression type E it matches
// against; callers supply small hash/decompose/build functions instead of
// requiring E to implement a fixed interface, so the same matcher serves
// Peano expressions, logical expressions, or any future domain.
package pattern

import "github.com/marrowlake/eqprover/pkg/term"

// Kind discriminates the four pattern forms of the data model.
type Kind int

const (
	KindVar Kind = iota
	KindWildcard
	KindConst
	KindCompound
)

// Pattern is a term with holes. Var binds a subtree to a numbered slot;
// Wildcard matches anything and binds nothing; Const matches only by
// structural equality; Compound matches a named constructor with matching
// children.
type Pattern[E any] struct {
	Kind     Kind
	VarIndex uint32
	ConstVal E
	Opcode   term.Opcode
	Args     []Pattern[E]
}

// Var builds a pattern that binds whatever it matches to index i.
func Var[E any](i uint32) Pattern[E] {
	return Pattern[E]{Kind: KindVar, VarIndex: i}
}

// Wildcard builds a pattern that matches anything and binds nothing.
func Wildcard[E any]() Pattern[E] {
	return Pattern[E]{Kind: KindWildcard}
}

// Const builds a pattern that only matches an expression structurally equal
// to e.
func Const[E any](e E) Pattern[E] {
	return Pattern[E]{Kind: KindConst, ConstVal: e}
}

// Compound builds a pattern that matches the named constructor applied to
// arguments matching args pairwise.
func Compound[E any](op term.Opcode, args ...Pattern[E]) Pattern[E] {
	return Pattern[E]{Kind: KindCompound, Opcode: op, Args: args}
}

// Equal reports whether a and b are the same pattern shape, comparing
// ConstVal via hash rather than Go equality so it works for patterns over
// pointer-shaped E. Used by axiom compilation to detect when two sides of a
// domain equality are the same pattern, making a rule relating them vacuous.
func Equal[E any](a, b Pattern[E], hash HashFn[E]) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindVar:
		return a.VarIndex == b.VarIndex
	case KindWildcard:
		return true
	case KindConst:
		return hash(a.ConstVal) == hash(b.ConstVal)
	case KindCompound:
		if a.Opcode != b.Opcode || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i], hash) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Substitution maps variable indices to the expressions they were bound to
// during a successful match.
type Substitution[E any] map[uint32]E

// Clone returns a shallow copy, used when a caller needs to extend a
// substitution without mutating the original (e.g. trying several
// compound-argument matches that must not leak bindings across branches).
func (s Substitution[E]) Clone() Substitution[E] {
	out := make(Substitution[E], len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
