package search

import "github.com/pathlab/mazeexplorer/maze"

// bfsPolicy implements the strict-FIFO frontier. A position is enqueued the
// first time it is discovered and never re-enqueued, so every reachable cell
// is dequeued at most once and the first route found to it is kept.
// Under Cardinal movement this yields shortest-hop optimal paths.
type bfsPolicy struct {
	queue []maze.Position
	seen  map[maze.Position]bool
}

func (p *bfsPolicy) seed(w *walker) {
	p.seen = map[maze.Position]bool{w.start: true}
	p.queue = append(p.queue, w.start)
}

func (p *bfsPolicy) pop(_ *walker) (maze.Position, bool) {
	if len(p.queue) == 0 {
		return maze.Position{}, false
	}
	cur := p.queue[0]
	p.queue = p.queue[1:]

	return cur, true
}

func (p *bfsPolicy) expand(w *walker, cur maze.Position) {
	for _, nbr := range Neighbors(w.grid, cur, w.mode) {
		if p.seen[nbr] {
			continue
		}
		p.seen[nbr] = true
		w.parent[nbr] = cur
		p.queue = append(p.queue, nbr)
	}
}
