package search

import "container/heap"

// frontier is a container/heap priority queue of *State[E], ordered by cost
// ascending. Ties are broken by insertion (sequence) order, since the
// cost estimator's reference implementation explicitly does not guarantee
// a stable tie-break beyond that (§4.7).
type frontier[E any] struct {
	items []*frontierItem[E]
	seq   int
}

type frontierItem[E any] struct {
	state *State[E]
	seq   int
}

func newFrontier[E any]() *frontier[E] {
	f := &frontier[E]{}
	heap.Init(f)
	return f
}

func (f *frontier[E]) push(s *State[E]) {
	heap.Push(f, &frontierItem[E]{state: s, seq: f.seq})
	f.seq++
}

func (f *frontier[E]) popMin() *State[E] {
	item := heap.Pop(f).(*frontierItem[E])
	return item.state
}

func (f *frontier[E]) Len() int { return len(f.items) }

func (f *frontier[E]) Less(i, j int) bool {
	if f.items[i].state.Cost != f.items[j].state.Cost {
		return f.items[i].state.Cost < f.items[j].state.Cost
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier[E]) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *frontier[E]) Push(x any) {
	f.items = append(f.items, x.(*frontierItem[E]))
}

func (f *frontier[E]) Pop() any {
	n := len(f.items)
	item := f.items[n-1]
	f.items = f.items[:n-1]
	return item
}
