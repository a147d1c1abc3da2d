// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/pathlab/mazeexplorer.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze construction and editing.
var (
	// ErrInvalidSize indicates a requested grid size outside [MinSize, MaxSize].
	ErrInvalidSize = errors.New("maze: size must be between 10 and 30")
	// ErrOutOfBounds indicates a cell access outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrProtectedCell indicates an edit on a border, start, or end cell.
	ErrProtectedCell = errors.New("maze: cell is protected and cannot be edited")
	// ErrNilRand indicates WithRand was given a nil random source.
	ErrNilRand = errors.New("maze: random source must not be nil")
	// ErrNotSquare indicates a cell matrix whose rows do not all match its height.
	ErrNotSquare = errors.New("maze: cell matrix must be square")
)

// Grid size bounds. Sizes outside this range are rejected with ErrInvalidSize.
const (
	MinSize = 10
	MaxSize = 30
)

// CellState is the state of a single grid cell.
type CellState uint8

const (
	// Open is a walkable cell.
	Open CellState = iota
	// Wall is a blocked cell.
	Wall
)

// Position is a 0-indexed (row, column) pair within a Grid.
type Position struct {
	Row, Col int
}

// Less reports whether p precedes q in natural row-major order.
// Used to break priority ties deterministically in the search frontier.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// Manhattan returns the L1 distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Grid is a bordered N×N field of cells with fixed start and end positions.
// A Grid is mutated only through SetCell/Toggle; it must be treated as
// read-only for the duration of a search run (callers serialize edits).
type Grid struct {
	size  int
	cells [][]CellState
	start Position
	end   Position
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.size }

// Start returns the fixed start position (1,1).
func (g *Grid) Start() Position { return g.start }

// End returns the fixed end position (N-2,N-2).
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the state of cell p. Out-of-bounds positions read as Wall,
// so traversals never need a separate bounds branch for state checks.
func (g *Grid) At(p Position) CellState {
	if !g.InBounds(p) {
		return Wall
	}

	return g.cells[p.Row][p.Col]
}

// IsOpen reports whether p is in bounds and walkable.
func (g *Grid) IsOpen(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Open
}

// isBorder reports whether p lies on the outer wall ring.
func (g *Grid) isBorder(p Position) bool {
	return p.Row == 0 || p.Row == g.size-1 || p.Col == 0 || p.Col == g.size-1
}

// SetCell sets the state of cell p.
// Returns ErrOutOfBounds for positions outside the grid and ErrProtectedCell
// for border, start, or end cells, which keep the structural invariants.
func (g *Grid) SetCell(p Position, s CellState) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.isBorder(p) || p == g.start || p == g.end {
		return ErrProtectedCell
	}
	g.cells[p.Row][p.Col] = s

	return nil
}

// Toggle flips cell p between Open and Wall under the same protection rules
// as SetCell.
func (g *Grid) Toggle(p Position) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.isBorder(p) || p == g.start || p == g.end {
		return ErrProtectedCell
	}
	if g.cells[p.Row][p.Col] == Open {
		g.cells[p.Row][p.Col] = Wall
	} else {
		g.cells[p.Row][p.Col] = Open
	}

	return nil
}

// Clone returns a deep copy of the grid, safe to hand to collaborators
// without aliasing the receiver's cells.
func (g *Grid) Clone() *Grid {
	cells := make([][]CellState, g.size)
	for i := range g.cells {
		cells[i] = make([]CellState, g.size)
		copy(cells[i], g.cells[i])
	}

	return &Grid{size: g.size, cells: cells, start: g.start, end: g.end}
}

// Equal reports whether two grids have the same size and cell pattern.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for i := 0; i < g.size; i++ {
		for j := 0; j < g.size; j++ {
			if g.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}

	return true
}

// Option configures maze generation via functional arguments.
type Option func(*genOptions)

// genOptions holds the resolved generation configuration.
type genOptions struct {
	rng *rand.Rand
	err error
}

// WithSeed creates a deterministic random source with the given seed.
// Prefer this in tests and anywhere reproducibility matters.
func WithSeed(seed int64) Option {
	return func(o *genOptions) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an explicit random source. A nil source is recorded and
// surfaced as ErrNilRand when Generate runs.
func WithRand(r *rand.Rand) Option {
	return func(o *genOptions) {
		if r == nil {
			o.err = ErrNilRand

			return
		}
		o.rng = r
	}
}
