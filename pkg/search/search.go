package search

import (
	"context"

	"github.com/marrowlake/eqprover/pkg/domain"
	"github.com/marrowlake/eqprover/pkg/rewrite"
)

// Outcome is the search's three-way verdict.
type Outcome int

const (
	NoConclusion Outcome = iota
	ProvedTrue
	ProvedFalse
)

func (o Outcome) String() string {
	switch o {
	case ProvedTrue:
		return "proven"
	case ProvedFalse:
		return "disproven"
	default:
		return "no conclusion"
	}
}

// Result is what a single proof invocation returns.
type Result[E any] struct {
	Outcome       Outcome
	History       []Step[E]
	NodesExplored int

	// FrontierPeak is the largest the frontier ever grew to during the
	// search, sampled after every push.
	FrontierPeak int
}

// Run implements the main loop of §4.7: pop the cheapest frontier state,
// check it against the goal checker, expand it by every rule at every
// position, and repeat until a goal is found, the frontier empties, or the
// node budget N is exhausted. ctx is consulted between pops as an optional
// cancellation point beyond the budget (§5); a nil ctx is treated as
// context.Background().
func Run[E any, P any](ctx context.Context, dom domain.Domain[E, P], initial E, rules []rewrite.Rule[E, P], cost CostFunc[E], goal GoalChecker[E], budget int) (*Result[E], error) {
	if ctx == nil {
		ctx = context.Background()
	}

	f := newFrontier[E]()
	f.push(&State[E]{Expr: initial, History: nil, Cost: cost(nil, initial)})

	visited := map[uint64]bool{}
	explored := 0
	peak := f.Len()

	for f.Len() > 0 {
		select {
		case <-ctx.Done():
			return &Result[E]{Outcome: NoConclusion, NodesExplored: explored, FrontierPeak: peak}, ctx.Err()
		default:
		}

		state := f.popMin()
		explored++
		if explored > budget {
			return &Result[E]{Outcome: NoConclusion, NodesExplored: explored, FrontierPeak: peak}, nil
		}

		if value, ok := goal(state.Expr); ok {
			outcome := ProvedFalse
			if value {
				outcome = ProvedTrue
			}
			return &Result[E]{Outcome: outcome, History: state.History, NodesExplored: explored, FrontierPeak: peak}, nil
		}

		h := dom.Hash(state.Expr)
		if visited[h] {
			continue
		}
		visited[h] = true

		for _, r := range rules {
			for _, successor := range r.ApplyRecursive(dom, state.Expr) {
				history := append(append([]Step[E]{}, state.History...), Step[E]{
					RuleName: r.Name,
					Before:   state.Expr,
					After:    successor,
				})
				next := &State[E]{Expr: successor, History: history}
				next.Cost = cost(state, successor)
				f.push(next)
				if f.Len() > peak {
					peak = f.Len()
				}
			}
		}
	}
	return &Result[E]{Outcome: NoConclusion, NodesExplored: explored, FrontierPeak: peak}, nil
}
