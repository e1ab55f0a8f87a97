package peano

import (
	"fmt"
	"strings"

	"github.com/marrowlake/eqprover/pkg/logic"
)

// Render prints a logical expression over Peano arithmetic back in the
// surface syntax, for the proof trace's human-readable step lines. It is
// not guaranteed to round-trip through Parse/BuildLogic byte-for-byte
// (Bool constants have no surface-syntax form and render as TRUE/FALSE),
// but every rewrite step a proof actually produces is legible from it.
func Render(e *logic.Expr[*Expr]) string {
	switch e.Kind {
	case logic.KAnd:
		return paren("AND", Render(e.A), Render(e.B))
	case logic.KOr:
		return paren("OR", Render(e.A), Render(e.B))
	case logic.KNot:
		return paren("NOT", Render(e.A))
	case logic.KImplies:
		return paren("IMPLIES", Render(e.A), Render(e.B))
	case logic.KIff:
		return paren("IFF", Render(e.A), Render(e.B))
	case logic.KForall:
		return paren("FORALL", Render(e.A))
	case logic.KExists:
		return paren("EXISTS", Render(e.A))
	case logic.KEmbed:
		return paren("EQ", RenderArith(e.Embed.L), RenderArith(e.Embed.R))
	case logic.KBool:
		if e.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return "?"
	}
}

// RenderArith prints an arithmetic term in the surface syntax.
func RenderArith(a *Arith) string {
	switch a.Kind {
	case KindAdd:
		return fmt.Sprintf("PLUS %s %s", wrap(RenderArith(a.A)), wrap(RenderArith(a.B)))
	case KindSucc:
		return fmt.Sprintf("S%s", wrap(RenderArith(a.A)))
	case KindLit:
		return fmt.Sprintf("%d", a.Lit)
	case KindVar:
		return fmt.Sprintf("/%d", a.Var)
	default:
		return "?"
	}
}

func paren(op string, operands ...string) string {
	var b strings.Builder
	b.WriteString(op)
	for _, o := range operands {
		b.WriteString(" ")
		b.WriteString(wrap(o))
	}
	return b.String()
}

func wrap(s string) string {
	return "(" + s + ")"
}
