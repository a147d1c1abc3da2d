package search

import "github.com/pathlab/mazeexplorer/maze"

// reconstruct walks the predecessor map backward from target to the seeded
// start (the one position with no parent link) and returns the route in
// start→target order.
//
// If target was never discovered, the result is the single-element route
// [start]: callers interpret len(path) <= 1 as "no solution", never as an
// error. Complexity: O(len(path)).
func reconstruct(parent map[maze.Position]maze.Position, start, target maze.Position) []maze.Position {
	path := []maze.Position{}
	cur := target
	for cur != start {
		prev, ok := parent[cur]
		if !ok {
			// target was never reached; discard the partial walk
			return []maze.Position{start}
		}
		path = append(path, cur)
		cur = prev
	}
	path = append(path, start)

	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
