package search

import "github.com/pathlab/mazeexplorer/maze"

// frontierItem pairs a priority key with a position.
type frontierItem struct {
	key float64
	pos maze.Position
}

// frontierPQ is a min-heap of frontierItem ordered by key, with ties broken
// by natural (row, col) order of the position. The tie-break makes every
// priority-queue variant fully deterministic for a given grid and mode.
//
// Duplicated entries for one position are allowed (lazy decrease-key):
// variants push a fresh entry on every improvement and deal with stale pops
// under their own re-expansion rule.
type frontierPQ []frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by key ascending, then by position natural order.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].pos.Less(pq[j].pos)
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
