package peano

import "github.com/marrowlake/eqprover/pkg/pattern"

// VarsIn collects the pattern-variable indices occurring in p's operands.
// It is wired into the axiom compiler's rule-variable invariant check as
// the domainVars callback.
func VarsIn(p Pattern) []uint32 {
	seen := map[uint32]bool{}
	var walk func(pattern.Pattern[*Arith])
	walk = func(ap pattern.Pattern[*Arith]) {
		switch ap.Kind {
		case pattern.KindVar:
			seen[ap.VarIndex] = true
		case pattern.KindCompound:
			for _, arg := range ap.Args {
				walk(arg)
			}
		}
	}
	walk(p.L)
	walk(p.R)
	out := make([]uint32, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}
