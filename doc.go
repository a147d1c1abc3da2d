// Package mazeexplorer generates randomized grid mazes and solves them with a
// family of interchangeable graph-search strategies, keeping a full
// exploration trace for visualization and analysis.
//
// 🚀 What is mazeexplorer?
//
//	A small, deterministic pathfinding playground that brings together:
//		• Maze generation: bordered N×N grids with a Bernoulli wall field,
//		  strategic clutter near start/end, and a solvability-biased corridor
//		• Five search strategies: BFS, DFS, Dijkstra, A*, Greedy Best-First
//		• A shared traversal contract: one neighbor model, one cost model,
//		  one path-reconstruction routine
//		• Full traces: exploration order, final path, node counts, timings
//
// ✨ Why choose mazeexplorer?
//
//   - Deterministic – seeded generation, tie-broken frontiers, replayable runs
//   - Comparable – run all five strategies on the same grid and diff results
//   - Honest – "no path" is a value, not an error; generation never promises
//     a solvable maze
//   - Pure Go core – the algorithms depend on nothing but the grid
//
// Everything is organized under four subpackages plus a CLI:
//
//	maze/     — Grid data model, generator, and cell editing
//	search/   — movement model, five strategies, traces and results
//	mazefile/ — SIZE:<N> text codec and PNG export
//	compare/  — run every strategy on one grid and tabulate the outcome
//
// Quick ASCII example of a 10×10 generated maze:
//
//	##########
//	#S  #    #
//	# #  #   #
//	#  # # # #
//	#   #  # #
//	# #  #   #
//	#  #  #  #
//	# # #  # #
//	#    #  E#
//	##########
//
// Dive into each package's doc.go for contracts, complexity notes, and the
// exact determinism guarantees.
package mazeexplorer
