// Package logic implements the logical layer (C3): quantifiers and
// classical connectives over a pluggable domain of discourse D. Expr[D] is
// generic over D so the same connective machinery serves Peano arithmetic
// or any other domain satisfying pkg/domain.Domain.
package logic

import "github.com/marrowlake/eqprover/pkg/term"

// Kind discriminates the logical connective and leaf forms.
type Kind int

const (
	KAnd Kind = iota
	KOr
	KNot
	KImplies
	KIff
	KForall
	KExists
	KEmbed
	KBool
)

var (
	opAnd     = term.MustOpcode("logic-and")
	opOr      = term.MustOpcode("logic-or")
	opNot     = term.MustOpcode("logic-not")
	opImplies = term.MustOpcode("logic-implies")
	opIff     = term.MustOpcode("logic-iff")
	opForall  = term.MustOpcode("logic-forall")
	opExists  = term.MustOpcode("logic-exists")
	opEmbed   = term.MustOpcode("logic-embed")
	opBool    = term.MustOpcode("logic-bool")
)

// Expr is a logical expression over domain D. Quantifiers wrap a Body that
// refers to the bound variable through nameless (de Bruijn) depth indices
// inside D, so recursive rewriting never needs to alpha-rename. hash is
// computed once, at construction time, by the Store that built this node;
// it is never recomputed, which is what lets Expr[D] satisfy
// term.Hashable despite D itself only being hashable through a caller
// -supplied function rather than an interface constraint.
type Expr[D any] struct {
	Kind Kind
	A, B *Expr[D] // And/Or/Implies/Iff use both; Not/Forall/Exists use A (body)
	Embed D
	Bool  bool
	hash  uint64
}

// StructuralHash returns e's precomputed structural hash, satisfying
// term.Hashable so Expr[D] can be interned by a term.Store[Expr[D]] the same
// way every domain's own expression type is.
func (e Expr[D]) StructuralHash() uint64 { return e.hash }

// Size returns the number of nodes in e's subtree. D must itself be
// sized; callers provide that via domainSize rather than a type
// constraint, since Go cannot express "D implements a Size method" as a
// constraint alongside D being a type parameter used by value here
// without forcing every domain to box its expressions.
func (e *Expr[D]) Size(domainSize func(D) int) int {
	switch e.Kind {
	case KAnd, KOr, KImplies, KIff:
		return 1 + e.A.Size(domainSize) + e.B.Size(domainSize)
	case KNot, KForall, KExists:
		return 1 + e.A.Size(domainSize)
	case KEmbed:
		return 1 + domainSize(e.Embed)
	default:
		return 1
	}
}

// Store hash-conses Expr[D] nodes for one particular domain D, the logical
// -layer analogue of each domain's own *term.Store. It closes over the
// domain's hash function at construction so every node built through it
// carries a precomputed structural hash, mirroring the original's
// LogicalStorage<D> (original_source/crates/classical-logic/src/
// expression.rs). Every Expr[D] in this module is built through a Store;
// there is no bare struct-literal construction anywhere else.
type Store[D any] struct {
	domainHash func(D) uint64
	nodes      *term.Store[Expr[D]]
}

// NewStore creates an empty logical-expression store for domain D,
// consulting domainHash whenever an Embed node's hash needs computing.
func NewStore[D any](domainHash func(D) uint64) *Store[D] {
	return &Store[D]{domainHash: domainHash, nodes: term.NewStore[Expr[D]]()}
}

func (s *Store[D]) And(a, b *Expr[D]) *Expr[D] {
	return s.nodes.Intern(Expr[D]{Kind: KAnd, A: a, B: b, hash: term.Mix(opAnd, a.hash, b.hash)})
}

func (s *Store[D]) Or(a, b *Expr[D]) *Expr[D] {
	return s.nodes.Intern(Expr[D]{Kind: KOr, A: a, B: b, hash: term.Mix(opOr, a.hash, b.hash)})
}

func (s *Store[D]) Not(a *Expr[D]) *Expr[D] {
	return s.nodes.Intern(Expr[D]{Kind: KNot, A: a, hash: term.Mix(opNot, a.hash)})
}

func (s *Store[D]) Implies(a, b *Expr[D]) *Expr[D] {
	return s.nodes.Intern(Expr[D]{Kind: KImplies, A: a, B: b, hash: term.Mix(opImplies, a.hash, b.hash)})
}

func (s *Store[D]) Iff(a, b *Expr[D]) *Expr[D] {
	return s.nodes.Intern(Expr[D]{Kind: KIff, A: a, B: b, hash: term.Mix(opIff, a.hash, b.hash)})
}

func (s *Store[D]) Forall(body *Expr[D]) *Expr[D] {
	return s.nodes.Intern(Expr[D]{Kind: KForall, A: body, hash: term.Mix(opForall, body.hash)})
}

func (s *Store[D]) Exists(body *Expr[D]) *Expr[D] {
	return s.nodes.Intern(Expr[D]{Kind: KExists, A: body, hash: term.Mix(opExists, body.hash)})
}

func (s *Store[D]) Embed(d D) *Expr[D] {
	h := term.Mix(opEmbed, s.domainHash(d))
	return s.nodes.Intern(Expr[D]{Kind: KEmbed, Embed: d, hash: h})
}

func (s *Store[D]) Bool(b bool) *Expr[D] {
	v := uint64(0)
	if b {
		v = 1
	}
	return s.nodes.Intern(Expr[D]{Kind: KBool, Bool: b, hash: term.Mix(opBool, v)})
}
