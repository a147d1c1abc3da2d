package search

import (
	"container/heap"

	"github.com/pathlab/mazeexplorer/maze"
)

// costPolicy implements the min-priority frontier shared by Dijkstra and A*.
// The key is the cumulative cost g from start, plus an optional heuristic
// estimate to the goal (nil for Dijkstra, Manhattan for A*).
//
// Relaxation uses lazy decrease-key: whenever a strictly cheaper g is found
// for a neighbor — even one already seen — the predecessor link is rewritten
// and a fresh heap entry is pushed. Stale entries are not filtered on pop, so
// a position can be dequeued (and counted) more than once; the exploration
// trace reflects that faithfully.
type costPolicy struct {
	pq frontierPQ
	g  map[maze.Position]float64
	h  func(p, goal maze.Position) float64 // nil: no heuristic term
}

// newCostPolicy builds the weighted policy: Dijkstra for h == nil, A* otherwise.
func newCostPolicy(h func(p, goal maze.Position) float64) *costPolicy {
	return &costPolicy{h: h}
}

// newDijkstraPolicy returns the costPolicy keyed by cumulative cost alone.
// With non-negative step costs the first dequeue of a position carries its
// final shortest distance, so the resulting path cost is minimal.
func newDijkstraPolicy() *costPolicy {
	return newCostPolicy(nil)
}

func (p *costPolicy) seed(w *walker) {
	p.g = map[maze.Position]float64{w.start: 0}
	heap.Init(&p.pq)
	heap.Push(&p.pq, frontierItem{key: 0, pos: w.start})
}

func (p *costPolicy) pop(_ *walker) (maze.Position, bool) {
	if p.pq.Len() == 0 {
		return maze.Position{}, false
	}
	item := heap.Pop(&p.pq).(frontierItem)

	return item.pos, true
}

func (p *costPolicy) expand(w *walker, cur maze.Position) {
	for _, nbr := range Neighbors(w.grid, cur, w.mode) {
		newCost := p.g[cur] + StepCost(cur, nbr, w.mode)
		if old, seen := p.g[nbr]; seen && newCost >= old {
			continue
		}
		p.g[nbr] = newCost
		w.parent[nbr] = cur
		key := newCost
		if p.h != nil {
			key += p.h(nbr, w.end)
		}
		heap.Push(&p.pq, frontierItem{key: key, pos: nbr})
	}
}
