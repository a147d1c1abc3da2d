package search

import (
	"time"

	"github.com/pathlab/mazeexplorer/maze"
)

// Solve runs the chosen strategy over g from its start to its end cell and
// returns the full Result: exploration steps, path, node count, elapsed time.
//
// The grid is treated as read-only for the duration of the call; callers must
// not edit it concurrently. Frontier exhaustion without reaching the end is a
// normal outcome — branch on Result.Solved(), not on err.
//
// Returns ErrNilGrid for a nil grid, ErrUnknownAlgorithm for an Algorithm
// outside the closed set, or ErrUnknownMovement for an invalid option.
func Solve(g *maze.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Wall-clock measurement wraps the pure run so the algorithm itself
	// stays testable without timing noise.
	started := time.Now()
	res, err := run(g, algo, o.Movement)
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(started)

	return res, nil
}

// run is the pure core: grid + algorithm + mode in, Result (sans Elapsed) out.
func run(g *maze.Grid, algo Algorithm, mode MovementMode) (*Result, error) {
	p, err := newPolicy(algo)
	if err != nil {
		return nil, err
	}
	w := newWalker(g, mode)
	w.run(p)

	return w.assemble(reconstruct(w.parent, w.start, w.end)), nil
}
