package compare

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"github.com/pathlab/mazeexplorer/maze"
	"github.com/pathlab/mazeexplorer/search"
)

// Report is the outcome of one strategy on the shared grid.
type Report struct {
	Algorithm search.Algorithm
	Result    *search.Result
	PathCost  float64
	Solved    bool
}

// Run executes every strategy on g sequentially, in the canonical order of
// search.Algorithms, and returns one report per strategy.
func Run(g *maze.Grid, mode search.MovementMode) ([]Report, error) {
	reports := make([]Report, 0, len(search.Algorithms))
	for _, algo := range search.Algorithms {
		res, err := search.Solve(g, algo, search.WithMovement(mode))
		if err != nil {
			return nil, fmt.Errorf("compare: %s: %w", algo, err)
		}
		reports = append(reports, newReport(algo, res, mode))
	}

	return reports, nil
}

// RunParallel executes every strategy concurrently on the shared read-only
// grid. Reports come back in canonical order regardless of completion order.
// The context aborts the wait, not the individual solves, which are
// short-lived and run to completion.
func RunParallel(ctx context.Context, g *maze.Grid, mode search.MovementMode) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]Report, len(search.Algorithms))
	errs := make([]error, len(search.Algorithms))

	var wg sync.WaitGroup
	for i, algo := range search.Algorithms {
		wg.Add(1)
		go func(i int, algo search.Algorithm) {
			defer wg.Done()
			res, err := search.Solve(g, algo, search.WithMovement(mode))
			if err != nil {
				errs[i] = fmt.Errorf("compare: %s: %w", algo, err)

				return
			}
			reports[i] = newReport(algo, res, mode)
		}(i, algo)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return reports, nil
}

// newReport derives the comparison figures from one solve result.
func newReport(algo search.Algorithm, res *search.Result, mode search.MovementMode) Report {
	return Report{
		Algorithm: algo,
		Result:    res,
		PathCost:  PathCost(res.Path, mode),
		Solved:    res.Solved(),
	}
}

// PathCost sums the step costs along path under mode. A path of fewer than
// two positions has cost 0.
func PathCost(path []maze.Position, mode search.MovementMode) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += search.StepCost(path[i-1], path[i], mode)
	}

	return total
}

// WriteTable prints a plain-text comparison table of reports to w.
func WriteTable(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSOLVED\tTIME\tNODES\tPATH LEN\tPATH COST")
	for _, r := range reports {
		solved := "yes"
		pathLen := len(r.Result.Path)
		if !r.Solved {
			solved = "no"
			pathLen = 0
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.3f\n",
			r.Algorithm, solved, r.Result.Elapsed, r.Result.NodesExplored, pathLen, r.PathCost)
	}

	return tw.Flush()
}
