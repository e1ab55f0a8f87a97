// Package axiom implements the axiom compiler (C6): lowering a named,
// closed logical expression into zero or more rewrite rules.
package axiom

import (
	"github.com/pkg/errors"

	"github.com/marrowlake/eqprover/pkg/logic"
	"github.com/marrowlake/eqprover/pkg/rewrite"
)

// ErrExistentialUnsupported is returned (wrapped with the axiom's name) when
// an axiom's top-level connective, after stripping leading universals, is
// existential. Skolemization, witness synthesis and a dedicated existential
// tactic were all considered and rejected per the open question this
// resolves: the expression is preserved and the gap is surfaced to the
// caller rather than guessed at.
var ErrExistentialUnsupported = errors.New("existential axioms are not compiled to rewrite rules")

// ErrRuleVariableInvariant is returned (wrapped with the axiom's name) when
// a rule's replacement would mention a pattern variable absent from its
// left-hand side.
var ErrRuleVariableInvariant = errors.New("rule replacement mentions a variable absent from its left-hand side")

// Rule is the concrete rule type this compiler produces.
type Rule[D any, Pd any] = rewrite.Rule[*logic.Expr[D], logic.Pattern[D, Pd]]

// Compile lowers a named axiom into rewrite rules, per §4.6. domainVars
// collects the pattern-variable indices occurring inside a domain pattern;
// it is consulted by the rule-variable invariant check and may be nil for
// domains whose patterns never carry variables.
func Compile[D any, Pd any](ld logic.LogicDomain[D, Pd], name string, axiom *logic.Expr[D], domainVars func(Pd) []uint32) ([]Rule[D, Pd], error) {
	body := axiom
	for body.Kind == logic.KForall {
		body = body.A
	}

	switch body.Kind {
	case logic.KIff:
		return compileBidirectional(ld, name, body.A, body.B, domainVars)

	case logic.KEmbed:
		return compileDomainEquality(ld, name, body, domainVars)

	case logic.KImplies:
		return compileForward(ld, name, body.A, body.B, domainVars)

	case logic.KNot:
		return compileNegation(ld, name, body.A, domainVars)

	case logic.KExists:
		return nil, errors.Wrapf(ErrExistentialUnsupported, "axiom %q", name)

	case logic.KBool:
		// A closed boolean axiom has nothing left to rewrite toward.
		return nil, nil

	default: // And, Or: recurse into operands and compile each independently.
		left, err := Compile(ld, name, body.A, domainVars)
		if err != nil {
			return nil, err
		}
		right, err := Compile(ld, name, body.B, domainVars)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}
}

func compileBidirectional[D any, Pd any](ld logic.LogicDomain[D, Pd], name string, a, b *logic.Expr[D], domainVars func(Pd) []uint32) ([]Rule[D, Pd], error) {
	from := ld.DecomposeToPattern(a)
	to := ld.DecomposeToPattern(b)
	if err := checkInvariant(name, from, to, domainVars); err != nil {
		return nil, err
	}
	if err := checkInvariant(name, to, from, domainVars); err != nil {
		return nil, err
	}
	return []Rule[D, Pd]{{Name: name, From: from, To: to, Direction: rewrite.Both}}, nil
}

func compileForward[D any, Pd any](ld logic.LogicDomain[D, Pd], name string, a, b *logic.Expr[D], domainVars func(Pd) []uint32) ([]Rule[D, Pd], error) {
	from := ld.DecomposeToPattern(a)
	to := ld.DecomposeToPattern(b)
	if err := checkInvariant(name, from, to, domainVars); err != nil {
		return nil, err
	}
	return []Rule[D, Pd]{{Name: name, From: from, To: to, Direction: rewrite.Forward}}, nil
}

func compileNegation[D any, Pd any](ld logic.LogicDomain[D, Pd], name string, a *logic.Expr[D], domainVars func(Pd) []uint32) ([]Rule[D, Pd], error) {
	from := ld.DecomposeToPattern(a)
	to := logic.PConstP[D, Pd](ld.Exprs.Bool(false))
	if err := checkInvariant(name, from, to, domainVars); err != nil {
		return nil, err
	}
	return []Rule[D, Pd]{{Name: name, From: from, To: to, Direction: rewrite.Forward}}, nil
}

// DomainEqualityPattern is implemented by a domain whose pattern type
// represents a two-sided equality (as Peano's does), letting the axiom
// compiler build the domain-level biconditional rule a <-> b that a
// top-level domain equality axiom requires, alongside the embed-to-true
// collapse every such axiom gets regardless. A domain that does not
// implement this interface only gets the embed-to-true rule.
type DomainEqualityPattern[Pd any] interface {
	// SwapEqualityOperands returns p with its two compared operands
	// exchanged, and reports whether those operands are the same pattern
	// (in which case the swap is a no-op and the biconditional rule would
	// only ever rewrite a term to itself).
	SwapEqualityOperands(p Pd) (swapped Pd, sameOperands bool)
}

// compileDomainEquality handles a top-level embedded-domain equality. It
// always emits the forward embed-pattern-to-true collapse (what proves x=x
// via reflexivity), and — when the domain exposes DomainEqualityPattern and
// the equality's two operands are not the same pattern — also emits the
// bidirectional domain-level rule `a <-> b` that §4.6 calls for. Reflexivity
// is the only axiom in this module's set that reaches this path, and its
// operands are identical, so the biconditional half is skipped for it
// (recorded in DESIGN.md); a future axiom whose top-level connective is a
// non-reflexive domain equality would get both rules.
func compileDomainEquality[D any, Pd any](ld logic.LogicDomain[D, Pd], name string, body *logic.Expr[D], domainVars func(Pd) []uint32) ([]Rule[D, Pd], error) {
	from := ld.DecomposeToPattern(body)
	to := logic.PConstP[D, Pd](ld.Exprs.Bool(true))
	if err := checkInvariant(name, from, to, domainVars); err != nil {
		return nil, err
	}
	rules := []Rule[D, Pd]{{Name: name, From: from, To: to, Direction: rewrite.Forward}}

	if swapper, ok := any(ld.Inner).(DomainEqualityPattern[Pd]); ok && from.Kind == logic.PEmbed {
		swapped, sameOperands := swapper.SwapEqualityOperands(from.EmbedPat)
		if !sameOperands {
			biFrom := from
			biTo := logic.PEmbedP[D, Pd](swapped)
			if err := checkInvariant(name, biFrom, biTo, domainVars); err != nil {
				return nil, err
			}
			if err := checkInvariant(name, biTo, biFrom, domainVars); err != nil {
				return nil, err
			}
			rules = append(rules, Rule[D, Pd]{Name: name, From: biFrom, To: biTo, Direction: rewrite.Both})
		}
	}
	return rules, nil
}

func checkInvariant[D any, Pd any](name string, from, to logic.Pattern[D, Pd], domainVars func(Pd) []uint32) error {
	fromVars := collectVars(from, domainVars)
	toVars := collectVars(to, domainVars)
	for v := range toVars {
		if !fromVars[v] {
			return errors.Wrapf(ErrRuleVariableInvariant, "axiom %q", name)
		}
	}
	return nil
}

func collectVars[D any, Pd any](p logic.Pattern[D, Pd], domainVars func(Pd) []uint32) map[uint32]bool {
	out := map[uint32]bool{}
	var walk func(p logic.Pattern[D, Pd])
	walk = func(p logic.Pattern[D, Pd]) {
		switch p.Kind {
		case logic.PVar:
			out[p.VarIndex] = true
		case logic.PCompound:
			for _, arg := range p.Args {
				walk(arg)
			}
		case logic.PEmbed:
			if domainVars != nil {
				for _, v := range domainVars(p.EmbedPat) {
					out[v] = true
				}
			}
		}
	}
	walk(p)
	return out
}
