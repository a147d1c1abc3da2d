package search

import "github.com/pathlab/mazeexplorer/maze"

// Movement costs. DiagonalCost is a literal √2 approximation, not computed at
// runtime, so traces stay bit-for-bit reproducible.
const (
	StraightCost = 1.0
	DiagonalCost = 1.414
)

// StepCost returns the cost of moving from cur to an adjacent nbr under mode.
// Under Cardinal movement every step costs StraightCost. Under Diagonal
// movement a step is diagonal exactly when |Δrow|+|Δcol| == 2.
func StepCost(cur, nbr maze.Position, mode MovementMode) float64 {
	if mode == Diagonal && cur.Manhattan(nbr) == 2 {
		return DiagonalCost
	}

	return StraightCost
}

// manhattan is the heuristic shared by A* and Greedy Best-First: the L1
// distance from p to the goal. Kept in both movement modes even though it can
// overestimate under Diagonal movement (see the package doc caveat).
func manhattan(p, goal maze.Position) float64 {
	return float64(p.Manhattan(goal))
}
