package peano

import (
	"github.com/pkg/errors"

	"github.com/marrowlake/eqprover/internal/surface"
	"github.com/marrowlake/eqprover/pkg/logic"
)

// ErrBuild is wrapped with context and surfaced to the CLI boundary when a
// parsed surface-syntax tree uses a form this domain does not recognise.
var ErrBuild = errors.New("unrecognised surface syntax form")

// BuildLogic turns a parsed surface-syntax node into a logical expression
// over Peano arithmetic, recognising the shared logic vocabulary
// (FORALL/EXISTS/IMPLIES/IFF/AND/OR/NOT) plus EQ as the point where the
// tree switches into pure arithmetic (PLUS/S/literal/variable).
func BuildLogic(n *surface.Node) (*logic.Expr[*Expr], error) {
	switch n.Op {
	case "FORALL":
		if len(n.Kids) != 1 {
			return nil, errors.Wrapf(ErrBuild, "FORALL takes exactly one operand")
		}
		body, err := BuildLogic(n.Kids[0])
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.Forall(body), nil

	case "EXISTS":
		if len(n.Kids) != 1 {
			return nil, errors.Wrapf(ErrBuild, "EXISTS takes exactly one operand")
		}
		body, err := BuildLogic(n.Kids[0])
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.Exists(body), nil

	case "IMPLIES":
		a, b, err := buildBinaryLogic(n)
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.Implies(a, b), nil

	case "IFF":
		a, b, err := buildBinaryLogic(n)
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.Iff(a, b), nil

	case "AND":
		a, b, err := buildBinaryLogic(n)
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.And(a, b), nil

	case "OR":
		a, b, err := buildBinaryLogic(n)
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.Or(a, b), nil

	case "NOT":
		if len(n.Kids) != 1 {
			return nil, errors.Wrapf(ErrBuild, "NOT takes exactly one operand")
		}
		a, err := BuildLogic(n.Kids[0])
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.Not(a), nil

	case "EQ":
		if len(n.Kids) != 2 {
			return nil, errors.Wrapf(ErrBuild, "EQ takes exactly two operands")
		}
		l, err := BuildArith(n.Kids[0])
		if err != nil {
			return nil, err
		}
		r, err := BuildArith(n.Kids[1])
		if err != nil {
			return nil, err
		}
		return LogicDomain.Exprs.Embed(NewEquality(l, r)), nil

	default:
		return nil, errors.Wrapf(ErrBuild, "unknown logical operator %q", n.Op)
	}
}

func buildBinaryLogic(n *surface.Node) (*logic.Expr[*Expr], *logic.Expr[*Expr], error) {
	if len(n.Kids) != 2 {
		return nil, nil, errors.Wrapf(ErrBuild, "%s takes exactly two operands", n.Op)
	}
	a, err := BuildLogic(n.Kids[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := BuildLogic(n.Kids[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// BuildArith turns a parsed surface-syntax node into a Peano arithmetic
// term, recognising PLUS, S, decimal literals and /N variables.
func BuildArith(n *surface.Node) (*Arith, error) {
	switch {
	case n.IsNumber:
		return NewLit(n.Number), nil
	case n.IsVar:
		return NewVar(n.VarIndex), nil
	case n.Op == "PLUS":
		if len(n.Kids) != 2 {
			return nil, errors.Wrapf(ErrBuild, "PLUS takes exactly two operands")
		}
		a, err := BuildArith(n.Kids[0])
		if err != nil {
			return nil, err
		}
		b, err := BuildArith(n.Kids[1])
		if err != nil {
			return nil, err
		}
		return NewAdd(a, b), nil
	case n.Op == "S":
		if len(n.Kids) != 1 {
			return nil, errors.Wrapf(ErrBuild, "S takes exactly one operand")
		}
		a, err := BuildArith(n.Kids[0])
		if err != nil {
			return nil, err
		}
		return NewSucc(a), nil
	default:
		return nil, errors.Wrapf(ErrBuild, "unknown arithmetic operator %q", n.Op)
	}
}
