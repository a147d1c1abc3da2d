package maze_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pathlab/mazeexplorer/maze"
)

//----------------------------------------------------------------------------//
// Generate Tests
//----------------------------------------------------------------------------//

// TestGenerate_InvalidSize verifies that out-of-range sizes are rejected.
func TestGenerate_InvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 9, 31, 100} {
		if _, err := maze.Generate(size); !errors.Is(err, maze.ErrInvalidSize) {
			t.Errorf("Generate(%d) error = %v; want ErrInvalidSize", size, err)
		}
	}
}

// TestGenerate_StructuralInvariants checks border, start, end, and size for a
// spread of legal sizes.
func TestGenerate_StructuralInvariants(t *testing.T) {
	for _, size := range []int{10, 15, 23, 30} {
		g, err := maze.Generate(size, maze.WithSeed(7))
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", size, err)
		}
		if g.Size() != size {
			t.Errorf("Size() = %d; want %d", g.Size(), size)
		}
		if g.Start() != (maze.Position{Row: 1, Col: 1}) {
			t.Errorf("Start() = %v; want (1,1)", g.Start())
		}
		if g.End() != (maze.Position{Row: size - 2, Col: size - 2}) {
			t.Errorf("End() = %v; want (%d,%d)", g.End(), size-2, size-2)
		}
		for i := 0; i < size; i++ {
			for _, p := range []maze.Position{
				{Row: 0, Col: i}, {Row: size - 1, Col: i},
				{Row: i, Col: 0}, {Row: i, Col: size - 1},
			} {
				if g.At(p) != maze.Wall {
					t.Errorf("size %d: border cell %v is not Wall", size, p)
				}
			}
		}
		if !g.IsOpen(g.Start()) || !g.IsOpen(g.End()) {
			t.Errorf("size %d: start/end must be Open", size)
		}
	}
}

// TestGenerate_Deterministic verifies that the same seed reproduces the same grid.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(17, maze.WithSeed(42))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	b, err := maze.Generate(17, maze.WithSeed(42))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !a.Equal(b) {
		t.Error("two generations with the same seed differ")
	}
}

// TestGenerate_DiagonalCorridor verifies the solvability bias: every (i,i)
// strictly between start and the carve limit is Open.
func TestGenerate_DiagonalCorridor(t *testing.T) {
	const size = 15
	g, err := maze.Generate(size, maze.WithSeed(3))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	for i := 1; i < size-2; i++ {
		if !g.IsOpen(maze.Position{Row: i, Col: i}) {
			t.Errorf("diagonal cell (%d,%d) is not Open", i, i)
		}
	}
}

// TestGenerate_NilRand verifies that an explicit nil source is rejected.
func TestGenerate_NilRand(t *testing.T) {
	if _, err := maze.Generate(10, maze.WithRand(nil)); !errors.Is(err, maze.ErrNilRand) {
		t.Errorf("WithRand(nil) error = %v; want ErrNilRand", err)
	}
	if _, err := maze.Generate(10, maze.WithRand(rand.New(rand.NewSource(1)))); err != nil {
		t.Errorf("WithRand(non-nil) unexpected error: %v", err)
	}
}

//----------------------------------------------------------------------------//
// NewEmpty and FromCells Tests
//----------------------------------------------------------------------------//

// TestNewEmpty verifies the bordered, fully open interior.
func TestNewEmpty(t *testing.T) {
	g, err := maze.NewEmpty(10)
	if err != nil {
		t.Fatalf("NewEmpty error: %v", err)
	}
	for i := 1; i < 9; i++ {
		for j := 1; j < 9; j++ {
			if !g.IsOpen(maze.Position{Row: i, Col: j}) {
				t.Errorf("interior cell (%d,%d) is not Open", i, j)
			}
		}
	}
	if g.At(maze.Position{Row: 0, Col: 5}) != maze.Wall {
		t.Error("border cell (0,5) is not Wall")
	}
}

// TestFromCells covers validation and invariant re-assertion.
func TestFromCells(t *testing.T) {
	square := func(n int) [][]maze.CellState {
		cells := make([][]maze.CellState, n)
		for i := range cells {
			cells[i] = make([]maze.CellState, n)
		}

		return cells
	}

	if _, err := maze.FromCells(square(9)); !errors.Is(err, maze.ErrInvalidSize) {
		t.Errorf("9×9 input: error = %v; want ErrInvalidSize", err)
	}

	ragged := square(10)
	ragged[4] = ragged[4][:9]
	if _, err := maze.FromCells(ragged); !errors.Is(err, maze.ErrNotSquare) {
		t.Errorf("ragged input: error = %v; want ErrNotSquare", err)
	}

	// All-open input: border must come back Wall, start/end stay Open.
	cells := square(10)
	cells[1][1] = maze.Wall // start walled in the input
	cells[5][5] = maze.Wall
	g, err := maze.FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells error: %v", err)
	}
	if g.At(maze.Position{Row: 0, Col: 0}) != maze.Wall {
		t.Error("border not re-asserted to Wall")
	}
	if !g.IsOpen(g.Start()) {
		t.Error("start not re-asserted to Open")
	}
	if g.At(maze.Position{Row: 5, Col: 5}) != maze.Wall {
		t.Error("interior wall from input was lost")
	}
}

//----------------------------------------------------------------------------//
// Editing Tests
//----------------------------------------------------------------------------//

// TestGrid_EditProtection verifies the untouchable cells.
func TestGrid_EditProtection(t *testing.T) {
	g, err := maze.NewEmpty(10)
	if err != nil {
		t.Fatalf("NewEmpty error: %v", err)
	}

	cases := []struct {
		name string
		pos  maze.Position
		err  error
	}{
		{"OutOfBounds", maze.Position{Row: -1, Col: 3}, maze.ErrOutOfBounds},
		{"BeyondGrid", maze.Position{Row: 10, Col: 10}, maze.ErrOutOfBounds},
		{"Border", maze.Position{Row: 0, Col: 4}, maze.ErrProtectedCell},
		{"Start", g.Start(), maze.ErrProtectedCell},
		{"End", g.End(), maze.ErrProtectedCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.SetCell(tc.pos, maze.Wall); !errors.Is(err, tc.err) {
				t.Errorf("SetCell(%v) error = %v; want %v", tc.pos, err, tc.err)
			}
			if err := g.Toggle(tc.pos); !errors.Is(err, tc.err) {
				t.Errorf("Toggle(%v) error = %v; want %v", tc.pos, err, tc.err)
			}
		})
	}

	p := maze.Position{Row: 4, Col: 5}
	if err := g.SetCell(p, maze.Wall); err != nil {
		t.Fatalf("SetCell(%v) error: %v", p, err)
	}
	if g.IsOpen(p) {
		t.Error("cell still Open after SetCell(Wall)")
	}
	if err := g.Toggle(p); err != nil {
		t.Fatalf("Toggle(%v) error: %v", p, err)
	}
	if !g.IsOpen(p) {
		t.Error("cell still Wall after Toggle")
	}
}

// TestGrid_Clone verifies deep copying.
func TestGrid_Clone(t *testing.T) {
	g, err := maze.Generate(12, maze.WithSeed(9))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from original")
	}
	if err = c.Toggle(maze.Position{Row: 5, Col: 6}); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if g.Equal(c) {
		t.Error("editing the clone mutated the original")
	}
}

//----------------------------------------------------------------------------//
// Position Tests
//----------------------------------------------------------------------------//

// TestPosition_LessAndManhattan covers the ordering and distance helpers.
func TestPosition_LessAndManhattan(t *testing.T) {
	a := maze.Position{Row: 1, Col: 5}
	b := maze.Position{Row: 2, Col: 0}
	c := maze.Position{Row: 1, Col: 6}
	if !a.Less(b) || b.Less(a) {
		t.Error("row-major order: (1,5) must precede (2,0)")
	}
	if !a.Less(c) {
		t.Error("same row: (1,5) must precede (1,6)")
	}
	if d := a.Manhattan(b); d != 6 {
		t.Errorf("Manhattan = %d; want 6", d)
	}
}
