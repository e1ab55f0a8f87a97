package logic

import (
	"github.com/marrowlake/eqprover/pkg/domain"
	"github.com/marrowlake/eqprover/pkg/term"
)

// LogicDomain implements domain.Domain[*Expr[D], Pattern[D, Pd]] by
// delegating to an inner domain Inner wherever an embedded-domain node is
// reached, and handling the connectives generically everywhere else. This
// is C3 implementing every contract of C2 in terms of D's own contracts, as
// called for in §4.3.
type LogicDomain[D any, Pd any] struct {
	Inner domain.Domain[D, Pd]

	// Exprs hash-conses every Expr[D] this logical layer builds, the way
	// each domain interns its own expression type. Populated by
	// NewLogicDomain.
	Exprs *Store[D]

	// EmbedApply reconstructs a domain value from a fully literal (no
	// unbound pattern variables) domain pattern. It is only consulted by
	// the generic compound-pattern fallback in apply, when a replacement
	// pattern happens to carry a nested embedded-domain pattern outside of
	// the embed-embed and embed-to-boolean dispatch cases already handled
	// directly by TryRewrite; none of this module's compiled axioms reach
	// that path; it is nil-safe (apply simply fails that branch) when
	// unset.
	EmbedApply func(Pd) (D, bool)
}

// NewLogicDomain builds a LogicDomain over inner, wiring its Exprs store to
// inner's own Hash so every Embed node's structural hash is computed
// consistently with the domain it wraps.
func NewLogicDomain[D any, Pd any](inner domain.Domain[D, Pd]) LogicDomain[D, Pd] {
	return LogicDomain[D, Pd]{Inner: inner, Exprs: NewStore[D](inner.Hash)}
}

var _ domain.Domain[*Expr[string], Pattern[string, string]] = LogicDomain[string, string]{}

func (ld LogicDomain[D, Pd]) Hash(e *Expr[D]) uint64 {
	return e.StructuralHash()
}

func (ld LogicDomain[D, Pd]) Size(e *Expr[D]) int {
	return e.Size(ld.Inner.Size)
}

// DecomposeToPattern maps each connective to its compound pattern shape; an
// embedded-domain node becomes an Embed pattern wrapping the inner domain's
// own decomposition.
func (ld LogicDomain[D, Pd]) DecomposeToPattern(e *Expr[D]) Pattern[D, Pd] {
	switch e.Kind {
	case KAnd:
		return PAnd[D, Pd](ld.DecomposeToPattern(e.A), ld.DecomposeToPattern(e.B))
	case KOr:
		return PInOr[D, Pd](ld.DecomposeToPattern(e.A), ld.DecomposeToPattern(e.B))
	case KNot:
		return PNot[D, Pd](ld.DecomposeToPattern(e.A))
	case KImplies:
		return PImplies[D, Pd](ld.DecomposeToPattern(e.A), ld.DecomposeToPattern(e.B))
	case KIff:
		return PIff[D, Pd](ld.DecomposeToPattern(e.A), ld.DecomposeToPattern(e.B))
	case KForall:
		return PForall[D, Pd](ld.DecomposeToPattern(e.A))
	case KExists:
		return PExists[D, Pd](ld.DecomposeToPattern(e.A))
	case KEmbed:
		return PEmbedP[D, Pd](ld.Inner.DecomposeToPattern(e.Embed))
	default: // KBool
		return PConstP[D, Pd](e)
	}
}

// TryRewrite implements §4.3's three-way dispatch: embed-embed delegation,
// embed-pattern-to-boolean-constant collapse (how a matched domain
// tautology becomes a truth value), and generic structural match/apply
// otherwise.
func (ld LogicDomain[D, Pd]) TryRewrite(e *Expr[D], from, to Pattern[D, Pd]) (*Expr[D], bool) {
	if from.Kind == PEmbed && to.Kind == PEmbed {
		if e.Kind != KEmbed {
			return nil, false
		}
		d2, ok := ld.Inner.TryRewrite(e.Embed, from.EmbedPat, to.EmbedPat)
		if !ok {
			return nil, false
		}
		return ld.Exprs.Embed(d2), true
	}

	if from.Kind == PEmbed && to.Kind == PConst {
		if e.Kind != KEmbed {
			return nil, false
		}
		if _, ok := ld.Inner.TryRewrite(e.Embed, from.EmbedPat, from.EmbedPat); ok {
			return to.ConstVal, true
		}
		return nil, false
	}

	sub, ok := ld.match(e, from, Substitution[D]{})
	if !ok {
		return nil, false
	}
	return ld.apply(to, sub)
}

func (ld LogicDomain[D, Pd]) match(e *Expr[D], p Pattern[D, Pd], sub Substitution[D]) (Substitution[D], bool) {
	switch p.Kind {
	case PVar:
		if existing, bound := sub[p.VarIndex]; bound {
			if ld.Hash(existing) != ld.Hash(e) {
				return nil, false
			}
			return sub, true
		}
		next := sub.clone()
		next[p.VarIndex] = e
		return next, true

	case PWildcard:
		return sub, true

	case PConst:
		if ld.Hash(e) != ld.Hash(p.ConstVal) {
			return nil, false
		}
		return sub, true

	case PEmbed:
		if e.Kind != KEmbed {
			return nil, false
		}
		if _, ok := ld.Inner.TryRewrite(e.Embed, p.EmbedPat, p.EmbedPat); !ok {
			return nil, false
		}
		return sub, true

	case PCompound:
		children, ok := ld.connectiveChildren(e, p.Opcode)
		if !ok || len(children) != len(p.Args) {
			return nil, false
		}
		cur := sub
		for i, childPattern := range p.Args {
			next, ok := ld.match(children[i], childPattern, cur)
			if !ok {
				return nil, false
			}
			cur = next
		}
		return cur, true

	default:
		return nil, false
	}
}

func (ld LogicDomain[D, Pd]) apply(p Pattern[D, Pd], sub Substitution[D]) (*Expr[D], bool) {
	switch p.Kind {
	case PVar:
		e, ok := sub[p.VarIndex]
		return e, ok

	case PWildcard:
		return nil, false

	case PConst:
		return p.ConstVal, true

	case PEmbed:
		if ld.EmbedApply == nil {
			return nil, false
		}
		d2, ok := ld.EmbedApply(p.EmbedPat)
		if !ok {
			return nil, false
		}
		return ld.Exprs.Embed(d2), true

	case PCompound:
		args := make([]*Expr[D], len(p.Args))
		for i, a := range p.Args {
			child, ok := ld.apply(a, sub)
			if !ok {
				return nil, false
			}
			args[i] = child
		}
		return ld.buildConnective(p.Opcode, args)

	default:
		return nil, false
	}
}

// connectiveChildren returns e's children in fixed constructor order,
// provided e's kind matches op. Bool and Embed never decompose this way.
func (ld LogicDomain[D, Pd]) connectiveChildren(e *Expr[D], op term.Opcode) ([]*Expr[D], bool) {
	switch e.Kind {
	case KAnd:
		if op != opAnd {
			return nil, false
		}
		return []*Expr[D]{e.A, e.B}, true
	case KOr:
		if op != opOr {
			return nil, false
		}
		return []*Expr[D]{e.A, e.B}, true
	case KNot:
		if op != opNot {
			return nil, false
		}
		return []*Expr[D]{e.A}, true
	case KImplies:
		if op != opImplies {
			return nil, false
		}
		return []*Expr[D]{e.A, e.B}, true
	case KIff:
		if op != opIff {
			return nil, false
		}
		return []*Expr[D]{e.A, e.B}, true
	case KForall:
		if op != opForall {
			return nil, false
		}
		return []*Expr[D]{e.A}, true
	case KExists:
		if op != opExists {
			return nil, false
		}
		return []*Expr[D]{e.A}, true
	default:
		return nil, false
	}
}

// RecursiveRewrites walks every connective and quantifier body, trying the
// rule at each position, and hands off to the inner domain's own recursion
// the moment it reaches an embedded-domain node — exactly the split §4.3
// describes. Boolean leaves never recurse further.
func (ld LogicDomain[D, Pd]) RecursiveRewrites(e *Expr[D], from, to Pattern[D, Pd]) []*Expr[D] {
	var out []*Expr[D]
	embedToEmbed := e.Kind == KEmbed && from.Kind == PEmbed && to.Kind == PEmbed
	// For an embed-to-embed rule at an embedded node, the inner domain's own
	// recursion below already covers the root position.
	if !embedToEmbed {
		if r, ok := ld.TryRewrite(e, from, to); ok {
			out = append(out, r)
		}
	}

	switch e.Kind {
	case KAnd, KOr, KImplies, KIff:
		for _, a2 := range ld.RecursiveRewrites(e.A, from, to) {
			out = append(out, ld.rebuildSame(e, a2, e.B))
		}
		for _, b2 := range ld.RecursiveRewrites(e.B, from, to) {
			out = append(out, ld.rebuildSame(e, e.A, b2))
		}
	case KNot, KForall, KExists:
		for _, a2 := range ld.RecursiveRewrites(e.A, from, to) {
			out = append(out, ld.rebuildSame(e, a2, nil))
		}
	case KEmbed:
		if from.Kind == PEmbed && to.Kind == PEmbed {
			for _, d2 := range ld.Inner.RecursiveRewrites(e.Embed, from.EmbedPat, to.EmbedPat) {
				out = append(out, ld.Exprs.Embed(d2))
			}
		}
	}
	return out
}

// rebuildSame reconstructs e's own connective with newA/newB in place of its
// current children (newB is ignored for the single-child forms).
func (ld LogicDomain[D, Pd]) rebuildSame(e *Expr[D], newA, newB *Expr[D]) *Expr[D] {
	switch e.Kind {
	case KAnd:
		return ld.Exprs.And(newA, newB)
	case KOr:
		return ld.Exprs.Or(newA, newB)
	case KImplies:
		return ld.Exprs.Implies(newA, newB)
	case KIff:
		return ld.Exprs.Iff(newA, newB)
	case KNot:
		return ld.Exprs.Not(newA)
	case KForall:
		return ld.Exprs.Forall(newA)
	case KExists:
		return ld.Exprs.Exists(newA)
	default:
		return e
	}
}

// buildConnective constructs a connective node from an opcode and already
// -applied children, the logic-layer analogue of pattern.BuildFn.
func (ld LogicDomain[D, Pd]) buildConnective(op term.Opcode, args []*Expr[D]) (*Expr[D], bool) {
	switch {
	case op == opAnd && len(args) == 2:
		return ld.Exprs.And(args[0], args[1]), true
	case op == opOr && len(args) == 2:
		return ld.Exprs.Or(args[0], args[1]), true
	case op == opNot && len(args) == 1:
		return ld.Exprs.Not(args[0]), true
	case op == opImplies && len(args) == 2:
		return ld.Exprs.Implies(args[0], args[1]), true
	case op == opIff && len(args) == 2:
		return ld.Exprs.Iff(args[0], args[1]), true
	case op == opForall && len(args) == 1:
		return ld.Exprs.Forall(args[0]), true
	case op == opExists && len(args) == 1:
		return ld.Exprs.Exists(args[0]), true
	default:
		return nil, false
	}
}
