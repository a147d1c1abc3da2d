// Package maze defines the Grid data model and the randomized maze generator.
//
// What:
//
//   - Grid wraps a bordered N×N field of Open/Wall cells with fixed
//     start (1,1) and end (N-2,N-2) positions.
//   - Generate produces a randomized Grid: a Bernoulli wall field over the
//     deep interior, strategic clutter near start and end, and a diagonal
//     corridor that biases (but does not guarantee) solvability.
//   - NewEmpty produces a bordered Grid with a fully open interior, the
//     canonical starting point for loaders and editors.
//   - SetCell/Toggle support interactive cell editing while preserving the
//     structural invariants (border, start, end are untouchable).
//
// Why:
//
//   - Search benchmarking: feed the same Grid to every strategy.
//   - Visualization: the Grid is the single exchange format between the
//     generator, the editor, the solver, and the persistence layer.
//
// Determinism:
//
//   - Randomness is injected via WithSeed or WithRand, never ambient.
//     The same size and seed always reproduce the same Grid.
//
// Invariants (hold for every Grid this package returns):
//
//   - All border cells are Wall.
//   - Start and End are Open.
//   - 10 ≤ size ≤ 30.
//
// Errors:
//
//   - ErrInvalidSize: requested size outside [MinSize, MaxSize].
//   - ErrOutOfBounds: cell access outside the grid.
//   - ErrProtectedCell: attempt to edit border, start, or end cells.
//   - ErrNilRand: WithRand received a nil source.
//
// Complexity: Generate is O(N²) time and memory.
package maze
