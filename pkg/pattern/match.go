package pattern

// HashFn computes an expression's structural hash.
type HashFn[E any] func(e E) uint64

// DecomposeFn breaks a compound expression into its opcode and children. ok
// is false for atoms (literals, variables, embedded leaves) that have no
// children to recurse into.
type DecomposeFn[E any] func(e E) (op uint64, children []E, ok bool)

// BuildFn constructs a compound expression from an opcode and already-built
// children, interning the result. ok is false if the opcode is not one this
// expression type recognises.
type BuildFn[E any] func(op uint64, children []E) (e E, ok bool)

// Match attempts to match pattern p against expression e, per the table in
// the data model:
//
//	Var(i)        bind i to e, or require e equal the existing binding
//	Wildcard      always succeeds, binds nothing
//	Const(c)      succeeds iff hash(e) == hash(c)
//	Compound      e must decompose to the same opcode and arity; match
//	              children pairwise, unioning substitutions and failing on
//	              any binding conflict
//
// Match never mutates e or p; on failure it returns (nil, false) rather than
// an error, since a non-applicable pattern is an expected outcome, not a
// bug.
func Match[E any](e E, p Pattern[E], hash HashFn[E], decompose DecomposeFn[E]) (Substitution[E], bool) {
	return matchInto(e, p, hash, decompose, Substitution[E]{})
}

func matchInto[E any](e E, p Pattern[E], hash HashFn[E], decompose DecomposeFn[E], sub Substitution[E]) (Substitution[E], bool) {
	switch p.Kind {
	case KindVar:
		if existing, bound := sub[p.VarIndex]; bound {
			if hash(existing) != hash(e) {
				return nil, false
			}
			return sub, true
		}
		next := sub.Clone()
		next[p.VarIndex] = e
		return next, true

	case KindWildcard:
		return sub, true

	case KindConst:
		if hash(e) != hash(p.ConstVal) {
			return nil, false
		}
		return sub, true

	case KindCompound:
		op, children, ok := decompose(e)
		if !ok || op != uint64(p.Opcode) || len(children) != len(p.Args) {
			return nil, false
		}
		cur := sub
		for i, childPattern := range p.Args {
			next, ok := matchInto(children[i], childPattern, hash, decompose, cur)
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

// Apply reconstructs an expression from pattern p and a substitution, per
// the data model's apply table. Var(i) yields the bound expression (apply
// never sees an unbound variable in a well-formed rule, since the rule
// construction invariant rejects those at compile time, but Apply still
// reports failure rather than panicking if it happens). Wildcard never
// appears in a replacement and always fails. Const yields its literal as
// stored in the pattern, without interning it again.
// Compound recursively applies each argument and builds the result via
// build, failing if any argument fails or the opcode is unrecognised.
func Apply[E any](p Pattern[E], sub Substitution[E], build BuildFn[E]) (E, bool) {
	var zero E
	switch p.Kind {
	case KindVar:
		e, ok := sub[p.VarIndex]
		if !ok {
			return zero, false
		}
		return e, true

	case KindWildcard:
		return zero, false

	case KindConst:
		return p.ConstVal, true

	case KindCompound:
		children := make([]E, len(p.Args))
		for i, arg := range p.Args {
			child, ok := Apply(arg, sub, build)
			if !ok {
				return zero, false
			}
			children[i] = child
		}
		return build(uint64(p.Opcode), children)

	default:
		return zero, false
	}
}

// Pair bundles an expression with the pattern it must match, for MatchAll.
type Pair[E any] struct {
	Expr E
	Pat  Pattern[E]
}

// MatchAll matches each pair in order against a single shared substitution,
// so a variable bound while matching one pair constrains every later pair it
// appears in. This is how a domain whose expression is built from more than
// one independently-decomposable operand (Peano's equality of two
// arithmetic terms, for instance) matches both operands against a rule
// while keeping shared pattern variables consistent across them.
func MatchAll[E any](pairs []Pair[E], hash HashFn[E], decompose DecomposeFn[E]) (Substitution[E], bool) {
	sub := Substitution[E]{}
	for _, pr := range pairs {
		next, ok := matchInto(pr.Expr, pr.Pat, hash, decompose, sub)
		if !ok {
			return nil, false
		}
		sub = next
	}
	return sub, true
}

// RecursiveRewrite enumerates every expression obtainable by rewriting e, or
// any subterm of e, with (from -> to): first e itself, then each child in
// order, recursing before rebuilding. Atoms (decompose returns ok=false)
// contribute only the root position. This is the tree-walk behind
// domain.Domain.RecursiveRewrites for any expression type that is a
// homogeneous tree over a single E; heterogeneous expressions (the logical
// layer's connectives, which vary in arity and meaning per kind) walk
// themselves instead.
func RecursiveRewrite[E any](e E, from, to Pattern[E], hash HashFn[E], decompose DecomposeFn[E], build BuildFn[E]) []E {
	var out []E
	if sub, ok := Match(e, from, hash, decompose); ok {
		if rewritten, ok := Apply(to, sub, build); ok {
			out = append(out, rewritten)
		}
	}

	op, children, ok := decompose(e)
	if !ok {
		return out
	}
	for i := range children {
		for _, rewrittenChild := range RecursiveRewrite(children[i], from, to, hash, decompose, build) {
			newChildren := append([]E(nil), children...)
			newChildren[i] = rewrittenChild
			if rebuilt, ok := build(op, newChildren); ok {
				out = append(out, rebuilt)
			}
		}
	}
	return out
}

// Roundtrips applying the substitution produced by Match back through p
// reconstructs the original expression (property P3). Exposed primarily for
// property-based tests.
func Roundtrip[E any](e E, p Pattern[E], hash HashFn[E], decompose DecomposeFn[E], build BuildFn[E]) bool {
	sub, ok := Match(e, p, hash, decompose)
	if !ok {
		return false
	}
	rebuilt, ok := Apply(p, sub, build)
	if !ok {
		return false
	}
	return hash(rebuilt) == hash(e)
}
