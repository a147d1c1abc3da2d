package search

import "github.com/pathlab/mazeexplorer/maze"

// dfsPolicy implements the strict-LIFO frontier: same discover-once rule as
// BFS, but positions are popped from the end of the stack. Because neighbors
// are pushed in fixed offset order, the last offset is expanded first; that
// order is observable in the trace and must not change.
// DFS makes no optimality claim.
type dfsPolicy struct {
	stack []maze.Position
	seen  map[maze.Position]bool
}

func (p *dfsPolicy) seed(w *walker) {
	p.seen = map[maze.Position]bool{w.start: true}
	p.stack = append(p.stack, w.start)
}

func (p *dfsPolicy) pop(_ *walker) (maze.Position, bool) {
	if len(p.stack) == 0 {
		return maze.Position{}, false
	}
	cur := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	return cur, true
}

func (p *dfsPolicy) expand(w *walker, cur maze.Position) {
	for _, nbr := range Neighbors(w.grid, cur, w.mode) {
		if p.seen[nbr] {
			continue
		}
		p.seen[nbr] = true
		w.parent[nbr] = cur
		p.stack = append(p.stack, nbr)
	}
}
