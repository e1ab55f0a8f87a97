package logic

import "github.com/marrowlake/eqprover/pkg/term"

// PKind discriminates the logical-layer pattern forms. It mirrors
// pkg/pattern's Kind with one addition: Embed, which forwards into the
// domain's own pattern type.
type PKind int

const (
	PVar PKind = iota
	PWildcard
	PConst
	PCompound
	PEmbed
)

// Pattern matches against Expr[D]. Compound patterns name one of the fixed
// connective opcodes (And/Or/Not/Implies/Iff/Forall/Exists); Embed carries a
// pattern of the domain's own pattern type Pd, matched against an
// embedded-domain node by delegating to the domain.
type Pattern[D any, Pd any] struct {
	Kind     PKind
	VarIndex uint32
	ConstVal *Expr[D]
	Opcode   term.Opcode
	Args     []Pattern[D, Pd]
	EmbedPat Pd
}

func PVarP[D any, Pd any](i uint32) Pattern[D, Pd] { return Pattern[D, Pd]{Kind: PVar, VarIndex: i} }
func PWild[D any, Pd any]() Pattern[D, Pd]         { return Pattern[D, Pd]{Kind: PWildcard} }
func PConstP[D any, Pd any](e *Expr[D]) Pattern[D, Pd] {
	return Pattern[D, Pd]{Kind: PConst, ConstVal: e}
}
func PEmbedP[D any, Pd any](p Pd) Pattern[D, Pd] {
	return Pattern[D, Pd]{Kind: PEmbed, EmbedPat: p}
}

func pcompound[D any, Pd any](op term.Opcode, args ...Pattern[D, Pd]) Pattern[D, Pd] {
	return Pattern[D, Pd]{Kind: PCompound, Opcode: op, Args: args}
}

func PAnd[D any, Pd any](a, b Pattern[D, Pd]) Pattern[D, Pd]     { return pcompound(opAnd, a, b) }
func PInOr[D any, Pd any](a, b Pattern[D, Pd]) Pattern[D, Pd]    { return pcompound(opOr, a, b) }
func PNot[D any, Pd any](a Pattern[D, Pd]) Pattern[D, Pd]        { return pcompound(opNot, a) }
func PImplies[D any, Pd any](a, b Pattern[D, Pd]) Pattern[D, Pd] { return pcompound(opImplies, a, b) }
func PIff[D any, Pd any](a, b Pattern[D, Pd]) Pattern[D, Pd]     { return pcompound(opIff, a, b) }
func PForall[D any, Pd any](a Pattern[D, Pd]) Pattern[D, Pd]     { return pcompound(opForall, a) }
func PExists[D any, Pd any](a Pattern[D, Pd]) Pattern[D, Pd]     { return pcompound(opExists, a) }

// Substitution binds logic-level pattern variables to whole subexpressions.
// It is entirely separate from whatever substitution a domain builds while
// matching an embedded pattern: domain-level pattern variables introduced by
// stripping an axiom's quantifiers live inside a single embedded-domain
// node and never need to be shared with the surrounding logic-level match.
type Substitution[D any] map[uint32]*Expr[D]

func (s Substitution[D]) clone() Substitution[D] {
	out := make(Substitution[D], len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
