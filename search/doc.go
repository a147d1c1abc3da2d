// Package search runs graph-search strategies over a maze.Grid, producing the
// final path plus a full exploration trace for visualization and analysis.
//
// What:
//
//   - Five strategies behind one entry point: Solve(grid, algo, opts...).
//     BFS, DFS, Dijkstra, A*, and Greedy Best-First differ only in their
//     frontier discipline; neighbor enumeration, movement costs, and path
//     reconstruction are shared.
//   - Result carries the ordered animation steps (explore marks first, path
//     marks second), the reconstructed path, the node count, and wall time.
//   - Cardinal movement explores 4 neighbors at unit cost; Diagonal adds the
//     4 diagonal offsets at cost 1.414.
//
// Determinism:
//
//   - Neighbor enumeration follows a fixed offset order.
//   - Priority ties are broken by natural (row, col) order of positions.
//   - Two Solve calls on the same unmodified grid and mode yield identical
//     exploration orders and paths.
//
// No-path handling:
//
//   - Frontier exhaustion is not an error. The Result then holds a
//     single-element path containing only the start cell; branch on
//     len(Result.Path) <= 1, never on err.
//
// Heuristic caveat:
//
//   - A* and Greedy Best-First use the Manhattan distance in both movement
//     modes. Under Diagonal movement a 1.414-cost step covers two Manhattan
//     units, so the heuristic can overestimate remaining cost and A* loses
//     its optimality guarantee. This matches the reference behavior on
//     purpose; an octile heuristic would change observable path choices.
//
// Concurrency:
//
//   - Solve is synchronous and allocation-free of shared state: the grid is
//     read-only for the duration of the call and distinct calls share
//     nothing, so callers may run strategies in parallel on the same grid.
//
// Complexity:
//
//   - BFS/DFS: O(V + E). Heap-based variants: O((V + E) log V).
//
// Errors:
//
//   - ErrNilGrid: nil grid passed to Solve.
//   - ErrUnknownAlgorithm: Algorithm value outside the closed variant set.
//   - ErrUnknownMovement: MovementMode outside {Cardinal, Diagonal}.
package search
