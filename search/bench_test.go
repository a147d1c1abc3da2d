package search_test

import (
	"testing"

	"github.com/pathlab/mazeexplorer/maze"
	"github.com/pathlab/mazeexplorer/search"
)

// benchGrid is built once: a maximal-size seeded maze.
func benchGrid(b *testing.B) *maze.Grid {
	b.Helper()
	g, err := maze.Generate(30, maze.WithSeed(1))
	if err != nil {
		b.Fatalf("Generate error: %v", err)
	}

	return g
}

func benchmarkSolve(b *testing.B, algo search.Algorithm, mode search.MovementMode) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(g, algo, search.WithMovement(mode)); err != nil {
			b.Fatalf("Solve error: %v", err)
		}
	}
}

func BenchmarkSolve_BFS_Cardinal(b *testing.B)      { benchmarkSolve(b, search.BFS, search.Cardinal) }
func BenchmarkSolve_DFS_Cardinal(b *testing.B)      { benchmarkSolve(b, search.DFS, search.Cardinal) }
func BenchmarkSolve_Dijkstra_Diagonal(b *testing.B) { benchmarkSolve(b, search.Dijkstra, search.Diagonal) }
func BenchmarkSolve_AStar_Diagonal(b *testing.B)    { benchmarkSolve(b, search.AStar, search.Diagonal) }
func BenchmarkSolve_Greedy_Diagonal(b *testing.B) {
	benchmarkSolve(b, search.GreedyBestFirst, search.Diagonal)
}
