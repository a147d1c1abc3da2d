// Package compare runs every search strategy on one grid and tabulates the
// outcome.
//
// What:
//
//   - Run executes all five strategies sequentially in canonical order.
//   - RunParallel executes them concurrently — legal because Solve treats
//     the grid as read-only and the runs share no state — and still returns
//     reports in canonical order.
//   - PathCost sums the movement costs along a path, the figure the
//     optimality comparisons are made on.
//   - WriteTable prints a plain-text summary: status, wall time, nodes
//     explored, path length, path cost.
//
// An unsolvable grid is not an error: each report simply carries
// Solved=false and a single-cell path. Run fails only on real engine errors
// (nil grid, invalid mode).
package compare
