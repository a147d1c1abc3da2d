package search

import "github.com/pathlab/mazeexplorer/maze"

// walker encapsulates the mutable state every strategy shares: the read-only
// grid, the movement mode, the predecessor map, and the exploration order.
type walker struct {
	grid  *maze.Grid
	mode  MovementMode
	start maze.Position
	end   maze.Position

	// parent records, for each discovered position, the position it was
	// reached from. The start cell is the seed and has no entry.
	parent map[maze.Position]maze.Position

	// order lists positions in dequeue order: one append per frontier pop.
	order []maze.Position
}

// policy is the per-variant frontier discipline layered over the shared
// walker. Everything else — neighbor enumeration, costs, reconstruction,
// result assembly — is common.
type policy interface {
	// seed primes the frontier with the walker's start position.
	seed(w *walker)

	// pop removes the next position under the variant's ordering.
	// ok is false once the frontier is exhausted.
	pop(w *walker) (pos maze.Position, ok bool)

	// expand enumerates cur's neighbors and applies the variant's
	// discovery or relaxation rule, pushing onto the frontier.
	expand(w *walker, cur maze.Position)
}

// newWalker builds the shared state for one run over g.
func newWalker(g *maze.Grid, mode MovementMode) *walker {
	n := g.Size() * g.Size()

	return &walker{
		grid:   g,
		mode:   mode,
		start:  g.Start(),
		end:    g.End(),
		parent: make(map[maze.Position]maze.Position, n),
		order:  make([]maze.Position, 0, n),
	}
}

// newPolicy returns the frontier policy for algo, or ErrUnknownAlgorithm.
func newPolicy(algo Algorithm) (policy, error) {
	switch algo {
	case BFS:
		return &bfsPolicy{}, nil
	case DFS:
		return &dfsPolicy{}, nil
	case Dijkstra:
		return newDijkstraPolicy(), nil
	case AStar:
		return newAStarPolicy(), nil
	case GreedyBestFirst:
		return &greedyPolicy{}, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// run executes the shared traversal loop:
// pop → record in exploration order → stop on end → expand neighbors.
// Frontier exhaustion is the normal "no path" outcome, not an error.
func (w *walker) run(p policy) {
	p.seed(w)
	for {
		cur, ok := p.pop(w)
		if !ok {
			return
		}
		w.order = append(w.order, cur)
		if cur == w.end {
			return
		}
		p.expand(w, cur)
	}
}

// assemble builds the Result from the exploration order and the reconstructed
// path: StepExplore entries first, then StepPath entries for every path cell
// excluding start and end. Consumers rely on this emission order.
func (w *walker) assemble(path []maze.Position) *Result {
	steps := make([]Step, 0, len(w.order)+len(path))
	for _, p := range w.order {
		steps = append(steps, Step{Kind: StepExplore, Pos: p})
	}
	for _, p := range path {
		if p == w.start || p == w.end {
			continue
		}
		steps = append(steps, Step{Kind: StepPath, Pos: p})
	}

	return &Result{
		Steps:         steps,
		Path:          path,
		NodesExplored: len(w.order),
	}
}
