package search

// GoalChecker is a pure function returning (value, ok): ok is false for
// None (no conclusion from this expression alone), true with value set for
// Some(true)/Some(false). Determinism (P5) falls out of it being a pure
// function of its argument.
type GoalChecker[E any] func(e E) (value bool, ok bool)
