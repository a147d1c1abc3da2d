package search

import "github.com/pathlab/mazeexplorer/maze"

// Neighbor offsets in fixed enumeration order. The order is observable: it
// sets DFS expansion order and therefore the exploration trace, so it must
// stay exactly as listed.
var (
	cardinalOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets = [][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
)

// offsets returns the offset table for mode. Unknown modes fall back to
// Cardinal; Solve rejects them before any traversal starts.
func offsets(mode MovementMode) [][2]int {
	if mode == Diagonal {
		return diagonalOffsets
	}

	return cardinalOffsets
}

// Neighbors returns the in-bounds, open cells adjacent to p under mode,
// in fixed offset order. Complexity: O(1) (at most 8 candidates).
func Neighbors(g *maze.Grid, p maze.Position, mode MovementMode) []maze.Position {
	offs := offsets(mode)
	out := make([]maze.Position, 0, len(offs))
	for _, d := range offs {
		q := maze.Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.IsOpen(q) {
			out = append(out, q)
		}
	}

	return out
}
