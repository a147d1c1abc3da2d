package search

// newAStarPolicy returns the costPolicy keyed by f = g + h, where h is the
// Manhattan distance to the end cell.
//
// The heuristic stays Manhattan in both movement modes. Under Diagonal
// movement a single 1.414-cost step covers two Manhattan units, so h can
// overestimate the true remaining cost and A* loses its optimality
// guarantee there. This reproduces the reference behavior on purpose;
// switching to an octile heuristic would change observable path choices.
// Under Cardinal movement h is admissible and consistent: A* matches
// Dijkstra's path cost while expanding no more nodes.
func newAStarPolicy() *costPolicy {
	return newCostPolicy(manhattan)
}
