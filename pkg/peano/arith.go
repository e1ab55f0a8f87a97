// Package peano is the reference domain of discourse: Peano arithmetic.
// It plugs into the logical layer (pkg/logic) as the domain type D, and
// exercises every contract in pkg/domain, pkg/pattern and pkg/rewrite.
//
// Peano arithmetic splits into two tiers, mirroring the reference
// implementation this module is ported from:
//
//   - Arith is the pure arithmetic term type: add(a,b) | successor(a) |
//     literal(n) | variable(i). It never appears embedded directly; it only
//     ever occurs as an operand of an Expr.
//   - Expr (in expr.go) is the domain expression actually embedded under the
//     logical layer: an equality between two Arith terms. This is what C2's
//     Domain contract is implemented for.
package peano

import "github.com/marrowlake/eqprover/pkg/term"

// ArithKind discriminates the four arithmetic term forms.
type ArithKind int

const (
	KindAdd ArithKind = iota
	KindSucc
	KindLit
	KindVar
)

var (
	OpAdd  = term.MustOpcode("peano-add")
	OpSucc = term.MustOpcode("peano-succ")
)

// Arith is an immutable Peano arithmetic term. Add and Succ are compound
// (children A/B, and A); Lit and Var are atoms.
type Arith struct {
	Kind ArithKind
	A, B *Arith
	Lit  uint64
	Var  uint32
}

// StructuralHash implements term.Hashable.
func (a Arith) StructuralHash() uint64 {
	switch a.Kind {
	case KindAdd:
		return term.Mix(OpAdd, a.A.StructuralHash(), a.B.StructuralHash())
	case KindSucc:
		return term.Mix(OpSucc, a.A.StructuralHash())
	case KindLit:
		return term.Mix(term.MustOpcode("peano-lit"), a.Lit)
	case KindVar:
		return term.Mix(term.MustOpcode("peano-var"), uint64(a.Var))
	default:
		return 0
	}
}

// Size returns the number of nodes in the term's subtree.
func (a *Arith) Size() int {
	switch a.Kind {
	case KindAdd:
		return 1 + a.A.Size() + a.B.Size()
	case KindSucc:
		return 1 + a.A.Size()
	default:
		return 1
	}
}

// arithStore is the single node store shared by every Arith value ever
// constructed in a process. Arithmetic terms are small and endlessly
// reused across axioms and proof states, so structural sharing matters.
var arithStore = term.NewStore[Arith]()

// NewAdd interns a(dd)(a, b).
func NewAdd(a, b *Arith) *Arith {
	return arithStore.Intern(Arith{Kind: KindAdd, A: a, B: b})
}

// NewSucc interns successor(a).
func NewSucc(a *Arith) *Arith {
	return arithStore.Intern(Arith{Kind: KindSucc, A: a})
}

// NewLit interns the literal n.
func NewLit(n uint64) *Arith {
	return arithStore.Intern(Arith{Kind: KindLit, Lit: n})
}

// NewVar interns the nameless variable at depth index i.
func NewVar(i uint32) *Arith {
	return arithStore.Intern(Arith{Kind: KindVar, Var: i})
}

// ArithHash, ArithDecompose and ArithBuild are the three closures pkg/pattern
// needs to match and rewrite over *Arith.
func ArithHash(a *Arith) uint64 {
	return a.StructuralHash()
}

func ArithDecompose(a *Arith) (uint64, []*Arith, bool) {
	switch a.Kind {
	case KindAdd:
		return uint64(OpAdd), []*Arith{a.A, a.B}, true
	case KindSucc:
		return uint64(OpSucc), []*Arith{a.A}, true
	default:
		return 0, nil, false
	}
}

func ArithBuild(op uint64, children []*Arith) (*Arith, bool) {
	switch {
	case op == uint64(OpAdd) && len(children) == 2:
		return NewAdd(children[0], children[1]), true
	case op == uint64(OpSucc) && len(children) == 1:
		return NewSucc(children[0]), true
	default:
		return nil, false
	}
}
