package search

import (
	"container/heap"

	"github.com/pathlab/mazeexplorer/maze"
)

// greedyPolicy implements Greedy Best-First: the frontier is keyed by the
// Manhattan distance to the end alone, with no cumulative-cost term.
//
// A position is marked visited the moment it is enqueued — not dequeued —
// and is never enqueued again, even if a cheaper route to it turns up later.
// That makes the search fast and memory-light, but the returned path carries
// no optimality claim at all.
type greedyPolicy struct {
	pq      frontierPQ
	visited map[maze.Position]bool
}

func (p *greedyPolicy) seed(w *walker) {
	p.visited = map[maze.Position]bool{w.start: true}
	heap.Init(&p.pq)
	heap.Push(&p.pq, frontierItem{key: 0, pos: w.start})
}

func (p *greedyPolicy) pop(_ *walker) (maze.Position, bool) {
	if p.pq.Len() == 0 {
		return maze.Position{}, false
	}
	item := heap.Pop(&p.pq).(frontierItem)

	return item.pos, true
}

func (p *greedyPolicy) expand(w *walker, cur maze.Position) {
	for _, nbr := range Neighbors(w.grid, cur, w.mode) {
		if p.visited[nbr] {
			continue
		}
		p.visited[nbr] = true
		w.parent[nbr] = cur
		heap.Push(&p.pq, frontierItem{key: manhattan(nbr, w.end), pos: nbr})
	}
}
