package maze

import (
	"math/rand"
	"time"
)

// wallProbability is the independent chance that a deep-interior cell becomes
// a wall during generation. Fixed by design; not externally tunable.
const wallProbability = 0.35

// NewEmpty returns a bordered size×size grid with a fully open interior,
// start=(1,1) and end=(size-2,size-2).
// Returns ErrInvalidSize when size is outside [MinSize, MaxSize].
// Complexity: O(size²) time and memory.
func NewEmpty(size int) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}
	g := &Grid{
		size:  size,
		cells: make([][]CellState, size),
		start: Position{1, 1},
		end:   Position{size - 2, size - 2},
	}
	for i := 0; i < size; i++ {
		g.cells[i] = make([]CellState, size)
		for j := 0; j < size; j++ {
			if i == 0 || i == size-1 || j == 0 || j == size-1 {
				g.cells[i][j] = Wall
			}
		}
	}

	return g, nil
}

// FromCells builds a Grid from an explicit cell matrix, re-asserting the
// structural invariants: the border is forced Wall and start/end forced Open,
// whatever the input says. Returns ErrInvalidSize when the height is outside
// [MinSize, MaxSize] and ErrNotSquare when any row length differs from the
// height. The input is deep-copied; later edits to cells do not alias the Grid.
func FromCells(cells [][]CellState) (*Grid, error) {
	size := len(cells)
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}
	for _, row := range cells {
		if len(row) != size {
			return nil, ErrNotSquare
		}
	}
	g, err := NewEmpty(size)
	if err != nil {
		return nil, err
	}
	for i := 1; i < size-1; i++ {
		for j := 1; j < size-1; j++ {
			g.cells[i][j] = cells[i][j]
		}
	}
	g.cells[g.start.Row][g.start.Col] = Open
	g.cells[g.end.Row][g.end.Col] = Open

	return g, nil
}

// Generate produces a randomized size×size maze:
//
//  1. Border cells are Wall, interior cells Open.
//  2. Every cell with both coordinates in [2, size-3] independently becomes
//     Wall with probability wallProbability (a Bernoulli field, not a carving
//     algorithm — connectivity is NOT guaranteed).
//  3. Start and end are forced Open.
//  4. Strategic clutter: half of a fixed candidate set near start and half of
//     one near end become walls, chosen uniformly at random.
//  5. The diagonal (i,i) is carved Open toward the end cell, biasing the maze
//     toward solvability without guaranteeing it.
//
// Callers must treat "no path found" on the resulting grid as an expected
// outcome. Randomness comes from WithSeed/WithRand; the default source is
// time-seeded. Returns ErrInvalidSize for sizes outside [MinSize, MaxSize].
// Complexity: O(size²) time and memory.
func Generate(size int, opts ...Option) (*Grid, error) {
	o := genOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g, err := NewEmpty(size)
	if err != nil {
		return nil, err
	}

	// Bernoulli wall field over the deep interior (not adjacent to the border).
	for i := 2; i <= size-3; i++ {
		for j := 2; j <= size-3; j++ {
			if o.rng.Float64() < wallProbability {
				g.cells[i][j] = Wall
			}
		}
	}

	// Start and end always override the random pass.
	g.cells[g.start.Row][g.start.Col] = Open
	g.cells[g.end.Row][g.end.Col] = Open

	g.addStrategicWalls(o.rng)

	// Carve the diagonal corridor from near start toward end.
	limit := size - 1
	if m := max(g.end.Row, g.end.Col); m < limit {
		limit = m
	}
	for i := 1; i < limit; i++ {
		g.cells[i][i] = Open
	}

	return g, nil
}

// addStrategicWalls places extra walls near start and end for challenge.
// From each fixed candidate group, half the positions (integer division) are
// chosen uniformly and walled when strictly inside the border and distinct
// from start/end.
func (g *Grid) addStrategicWalls(rng *rand.Rand) {
	groups := [][]Position{
		// Near start (top-left).
		{{1, 3}, {1, 4}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {4, 1}},
		// Near end (bottom-right), relative to the end cell.
		{
			{g.end.Row - 1, g.end.Col - 2}, {g.end.Row - 2, g.end.Col - 1},
			{g.end.Row - 2, g.end.Col}, {g.end.Row, g.end.Col - 2},
			{g.end.Row - 3, g.end.Col - 1}, {g.end.Row - 1, g.end.Col - 3},
		},
	}
	for _, group := range groups {
		for _, k := range rng.Perm(len(group))[:len(group)/2] {
			p := group[k]
			if p.Row > 0 && p.Row < g.size-1 && p.Col > 0 && p.Col < g.size-1 &&
				p != g.start && p != g.end {
				g.cells[p.Row][p.Col] = Wall
			}
		}
	}
}
