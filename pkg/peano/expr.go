package peano

import (
	"github.com/marrowlake/eqprover/pkg/domain"
	"github.com/marrowlake/eqprover/pkg/pattern"
	"github.com/marrowlake/eqprover/pkg/term"
)

var opEquality = term.MustOpcode("peano-equality")

// Expr is the domain expression embedded under the logical layer: an
// equality between two arithmetic terms. This resolves a gap left open by
// the component's own description of its expression forms (add/successor/
// literal/variable, with no explicit equality constructor): those four are
// Arith's forms, not Expr's. Expr has exactly one shape, mirroring the
// original tool's PeanoDomainExpression::Equality.
type Expr struct {
	L, R *Arith
}

// StructuralHash implements term.Hashable.
func (e Expr) StructuralHash() uint64 {
	return term.Mix(opEquality, e.L.StructuralHash(), e.R.StructuralHash())
}

var exprStore = term.NewStore[Expr]()

// NewEquality interns the equality of two arithmetic terms.
func NewEquality(l, r *Arith) *Expr {
	return exprStore.Intern(Expr{L: l, R: r})
}

// Pattern mirrors Expr's single shape: a pattern over each operand.
type Pattern struct {
	L, R pattern.Pattern[*Arith]
}

// arithToPattern renders an arithmetic term as a pattern over itself,
// turning Var nodes into pattern variables and everything else into nested
// Const/Compound patterns. It is used when an axiom's surface-syntax side
// contains a literal arithmetic subterm rather than a bare pattern variable
// (e.g. the "0" in x+0=y).
func arithToPattern(a *Arith) pattern.Pattern[*Arith] {
	switch a.Kind {
	case KindVar:
		return pattern.Var[*Arith](a.Var)
	case KindAdd:
		return pattern.Compound[*Arith](OpAdd, arithToPattern(a.A), arithToPattern(a.B))
	case KindSucc:
		return pattern.Compound[*Arith](OpSucc, arithToPattern(a.A))
	default:
		return pattern.Const[*Arith](a)
	}
}

// ToPattern renders an arithmetic term as a pattern, the same conversion
// DecomposeToPattern applies to each operand of an equality. Nothing in
// this module calls it; the axiom compiler goes through DecomposeToPattern.
func ToPattern(a *Arith) pattern.Pattern[*Arith] {
	return arithToPattern(a)
}

// Peano implements domain.Domain[*Expr, Pattern]. It holds no mutable state
// of its own; every Arith and Expr value is interned through the package's
// shared stores, so two Peano values behave identically.
type Peano struct{}

var _ domain.Domain[*Expr, Pattern] = Peano{}

func (Peano) Hash(e *Expr) uint64 { return e.StructuralHash() }

func (Peano) Size(e *Expr) int { return 1 + e.L.Size() + e.R.Size() }

func (Peano) DecomposeToPattern(e *Expr) Pattern {
	return Pattern{L: arithToPattern(e.L), R: arithToPattern(e.R)}
}

// TryRewrite matches both operands against a single shared substitution, so
// a pattern variable occurring in both L and R (reflexivity's and
// successor-never-self's x does; successor-injectivity's x and y do not) is
// bound consistently across the whole equality.
func (Peano) TryRewrite(e *Expr, from, to Pattern) (*Expr, bool) {
	sub, ok := pattern.MatchAll([]pattern.Pair[*Arith]{
		{Expr: e.L, Pat: from.L},
		{Expr: e.R, Pat: from.R},
	}, ArithHash, ArithDecompose)
	if !ok {
		return nil, false
	}
	newL, ok := pattern.Apply(to.L, sub, ArithBuild)
	if !ok {
		return nil, false
	}
	newR, ok := pattern.Apply(to.R, sub, ArithBuild)
	if !ok {
		return nil, false
	}
	return NewEquality(newL, newR), true
}

// RecursiveRewrites tries the rule at the whole-equality position (the only
// position a rule relating both operands, like symmetry or successor
// injectivity, can ever apply at), plus — when the rule turns out to be a
// pure arithmetic identity dressed up as an equality, i.e. one operand's
// pattern passes through unchanged on both sides — recurses into every
// subterm of each operand independently, applying just the arithmetic half
// of the rule there via pattern.RecursiveRewrite.
//
// An axiom like "x+0=y implies x=y" only relates x to the value x+0 denotes;
// y is never examined or reshaped. Detecting that lets additive identity and
// additive successor fire on a subterm buried inside a larger arithmetic
// expression (needed, for instance, to finish reducing a successor wrapped
// around an addition), while axioms that genuinely entangle both operands
// (symmetry, successor injectivity, reflexivity) are correctly confined to
// whole-equality application.
func (pe Peano) RecursiveRewrites(e *Expr, from, to Pattern) []*Expr {
	var out []*Expr
	if r, ok := pe.TryRewrite(e, from, to); ok {
		out = append(out, r)
	}

	if arithFrom, arithTo, ok := passThroughIdentity(from, to); ok {
		for _, l2 := range pattern.RecursiveRewrite(e.L, arithFrom, arithTo, ArithHash, ArithDecompose, ArithBuild) {
			out = append(out, NewEquality(l2, e.R))
		}
		for _, r2 := range pattern.RecursiveRewrite(e.R, arithFrom, arithTo, ArithHash, ArithDecompose, ArithBuild) {
			out = append(out, NewEquality(e.L, r2))
		}
	}
	return out
}

// SwapEqualityOperands implements axiom.DomainEqualityPattern, letting the
// axiom compiler build the domain-level biconditional rule a <-> b that a
// top-level domain equality axiom requires alongside its embed-to-true
// collapse, and detect when that rule would be vacuous (both operands the
// same pattern, as with reflexivity).
func (Peano) SwapEqualityOperands(p Pattern) (Pattern, bool) {
	return Pattern{L: p.R, R: p.L}, pattern.Equal(p.L, p.R, ArithHash)
}

// passThroughIdentity reports whether (from, to) is an equality-shaped rule
// where one operand's pattern is the very same bare variable on both the
// from and to side (a pass-through), making the other operand's (from, to)
// pair a self-contained arithmetic identity independent of it.
func passThroughIdentity(from, to Pattern) (pattern.Pattern[*Arith], pattern.Pattern[*Arith], bool) {
	if isSameBareVar(from.R, to.R) {
		return from.L, to.L, true
	}
	if isSameBareVar(from.L, to.L) {
		return from.R, to.R, true
	}
	return pattern.Pattern[*Arith]{}, pattern.Pattern[*Arith]{}, false
}

func isSameBareVar(a, b pattern.Pattern[*Arith]) bool {
	return a.Kind == pattern.KindVar && b.Kind == pattern.KindVar && a.VarIndex == b.VarIndex
}
