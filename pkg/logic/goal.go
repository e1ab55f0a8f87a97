package logic

// ClassicalGoalChecker is the reference goal checker for classical binary
// truth (§4.7): a boolean constant is its own verdict, a universally
// quantified closed body carries the same truth as its body (vacuous
// alpha-equivalence since the body never refers back to the dropped
// quantifier once it has become a truth value), and anything else is
// undetermined.
func ClassicalGoalChecker[D any](e *Expr[D]) (value bool, ok bool) {
	switch e.Kind {
	case KBool:
		return e.Bool, true
	case KForall:
		return ClassicalGoalChecker(e.A)
	default:
		return false, false
	}
}
