// Package search defines tunable options, result types, and sentinel errors
// for the search strategies.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/pathlab/mazeexplorer/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrUnknownMovement is returned for a MovementMode outside the closed set.
	ErrUnknownMovement = errors.New("search: unknown movement mode")
)

// MovementMode selects neighbor connectivity: orthogonal only (Cardinal)
// or including diagonals (Diagonal).
type MovementMode int

const (
	// Cardinal uses 4-directional movement: up, down, left, right.
	Cardinal MovementMode = iota
	// Diagonal uses 8-directional movement: Cardinal plus the four diagonals.
	Diagonal
)

// String returns the mode name.
func (m MovementMode) String() string {
	switch m {
	case Cardinal:
		return "cardinal"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("MovementMode(%d)", int(m))
	}
}

// Algorithm identifies one of the five search strategies.
// The set is closed: switches over Algorithm can be exhaustive.
type Algorithm int

const (
	// BFS is breadth-first search: strict FIFO frontier, shortest-hop optimal.
	BFS Algorithm = iota
	// DFS is depth-first search: strict LIFO frontier, no optimality claim.
	DFS
	// Dijkstra orders the frontier by cumulative cost from start.
	Dijkstra
	// AStar orders the frontier by cumulative cost plus Manhattan heuristic.
	AStar
	// GreedyBestFirst orders the frontier by the Manhattan heuristic alone.
	GreedyBestFirst
)

// Algorithms lists every strategy in canonical order, for callers that want
// to run or display the full set.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, AStar, GreedyBestFirst}

// String returns the algorithm's display name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	case GreedyBestFirst:
		return "Greedy Best-First"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a user-facing name to an Algorithm.
// Accepted names (case-sensitive): bfs, dfs, dijkstra, astar, greedy.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar":
		return AStar, nil
	case "greedy":
		return GreedyBestFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// StepKind tags one entry of the animation trace.
type StepKind uint8

const (
	// StepExplore marks a cell the moment it was dequeued from the frontier.
	StepExplore StepKind = iota
	// StepPath marks a cell on the reconstructed path (start and end excluded).
	StepPath
)

// Step is one entry of the animation trace.
type Step struct {
	Kind StepKind
	Pos  maze.Position
}

// Result holds the outcome of one search run:
//   - Steps: StepExplore entries in exploration order, followed by StepPath
//     entries along the reconstructed route. Consumers must not reorder them.
//   - Path: positions from start to end; a single-element path containing
//     only start means the end was unreachable.
//   - NodesExplored: number of frontier dequeues.
//   - Elapsed: wall time of the run.
//
// A Result is an independent value with no reference into search state; it
// may be replayed or stored freely.
type Result struct {
	Steps         []Step
	Path          []maze.Position
	NodesExplored int
	Elapsed       time.Duration
}

// Solved reports whether the run reached the end cell.
func (r *Result) Solved() bool { return len(r.Path) > 1 }

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds parameters for one Solve call.
type Options struct {
	// Movement selects 4- or 8-directional neighbor expansion.
	Movement MovementMode

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Cardinal movement.
func DefaultOptions() Options {
	return Options{Movement: Cardinal}
}

// WithMovement selects the movement mode. Values outside the closed set are
// recorded and surfaced as ErrUnknownMovement when Solve is invoked.
func WithMovement(m MovementMode) Option {
	return func(o *Options) {
		if m != Cardinal && m != Diagonal {
			o.err = fmt.Errorf("%w: %d", ErrUnknownMovement, int(m))

			return
		}
		o.Movement = m
	}
}
