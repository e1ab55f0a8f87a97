// Package search implements the best-first proof search (C7): given an
// initial expression, a set of compiled rewrite rules, a cost estimator and
// a goal checker, it expands states by rewriting any subterm under any
// rule at any depth until a goal is recognised or a node budget is spent.
package search

// Step records one rewrite in a proof's history, for the human-readable
// trace: "n. before -> after [rule-name]".
type Step[E any] struct {
	RuleName string
	Before   E
	After    E
}

// State is a single frontier entry: the candidate expression, the sequence
// of steps that reached it from the initial expression, and its estimated
// cost.
type State[E any] struct {
	Expr    E
	History []Step[E]
	Cost    int
}
