// Package domain defines the contract a domain of discourse must satisfy to
// be plugged under the logical layer. A domain owns its own expression type,
// its own pattern type, and the five operations the logical layer and the
// proof search drive it through; Peano arithmetic (pkg/peano) is the
// reference instantiation.
package domain

// Domain is the contract an expression type E and its matching pattern type
// P must satisfy. Implementations are expected to be small, stateless (or
// hold only a *term.Store[E] field) value receivers — the interface plays
// the role the design notes describe as a four-function v-table for
// languages without parametric polymorphism; Go's generics let it be an
// ordinary interface instead.
type Domain[E any, P any] interface {
	// Hash returns e's structural hash.
	Hash(e E) uint64

	// Size returns the number of nodes in e's subtree.
	Size(e E) int

	// DecomposeToPattern builds a pattern mirroring e's shape, with literals
	// and variable markers rendered as pattern atoms. Used by the axiom
	// compiler to turn an axiom's operand subexpressions into patterns.
	DecomposeToPattern(e E) P

	// TryRewrite matches from against e and, on success, applies the
	// resulting bindings to to, returning the rewritten expression. Reports
	// ok=false (never an error) when from does not match.
	TryRewrite(e E, from, to P) (E, bool)

	// RecursiveRewrites enumerates every expression obtainable by rewriting
	// e, or any subterm of e, with (from -> to) — one result per distinct
	// applicable position, in a deterministic root-then-children order.
	RecursiveRewrites(e E, from, to P) []E
}
