package search_test

import (
	"fmt"

	"github.com/pathlab/mazeexplorer/maze"
	"github.com/pathlab/mazeexplorer/search"
)

// ExampleSolve runs BFS over an obstacle-free 10×10 grid. With no walls in
// the way, the shortest-hop path from (1,1) to (8,8) covers exactly
// 7+7+1 = 15 cells.
func ExampleSolve() {
	g, err := maze.NewEmpty(10)
	if err != nil {
		panic(err)
	}

	res, err := search.Solve(g, search.BFS, search.WithMovement(search.Cardinal))
	if err != nil {
		panic(err)
	}

	fmt.Println("solved:", res.Solved())
	fmt.Println("path cells:", len(res.Path))
	// Output:
	// solved: true
	// path cells: 15
}

// ExampleSolve_unreachable shows that a sealed end cell is a result, not an
// error: the path collapses to the start cell alone.
func ExampleSolve_unreachable() {
	g, err := maze.NewEmpty(10)
	if err != nil {
		panic(err)
	}
	// Seal the end cell off from the rest of the grid.
	for _, p := range []maze.Position{{Row: 7, Col: 7}, {Row: 7, Col: 8}, {Row: 8, Col: 7}} {
		if err = g.SetCell(p, maze.Wall); err != nil {
			panic(err)
		}
	}

	res, err := search.Solve(g, search.AStar)
	if err != nil {
		panic(err)
	}

	fmt.Println("solved:", res.Solved())
	fmt.Println("path cells:", len(res.Path))
	// Output:
	// solved: false
	// path cells: 1
}
