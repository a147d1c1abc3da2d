package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pathlab/mazeexplorer/compare"
	"github.com/pathlab/mazeexplorer/maze"
	"github.com/pathlab/mazeexplorer/mazefile"
	"github.com/pathlab/mazeexplorer/search"
)

// defaultSize matches the reference application's default maze dimension.
const defaultSize = 15

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mazeexplorer",
		Short:         "Generate grid mazes and visualize pathfinding strategies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newSolveCmd(), newCompareCmd(), newConvertCmd())

	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		size int
		seed int64
		out  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random maze and write it as text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []maze.Option{}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, maze.WithSeed(seed))
			}
			g, err := maze.Generate(size, opts...)
			if err != nil {
				return err
			}
			if out == "" {
				return mazefile.Encode(cmd.OutOrStdout(), g)
			}
			if err = mazefile.Save(out, g); err != nil {
				return err
			}
			slog.Info("maze written", "size", size, "path", out)

			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", defaultSize, "maze dimension N (10-30)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible generation")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func newSolveCmd() *cobra.Command {
	var (
		algoName string
		in       string
		size     int
		seed     int64
		diagonal bool
		pngOut   string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a maze with one strategy and report the outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			algo, err := search.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}
			g, err := obtainGrid(cmd, in, size, seed)
			if err != nil {
				return err
			}
			res, err := search.Solve(g, algo, search.WithMovement(movement(diagonal)))
			if err != nil {
				return err
			}
			printOutcome(cmd, algo, res, movement(diagonal))
			if pngOut != "" {
				if err = mazefile.SavePNG(pngOut, g, res, 0); err != nil {
					return err
				}
				slog.Info("image written", "path", pngOut)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&algoName, "algo", "bfs", "strategy: bfs|dfs|dijkstra|astar|greedy")
	cmd.Flags().StringVar(&in, "in", "", "maze file to load (omit to generate)")
	cmd.Flags().IntVar(&size, "size", defaultSize, "maze dimension when generating")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed when generating")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal movement")
	cmd.Flags().StringVar(&pngOut, "png", "", "also export the solved maze as PNG")

	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		in       string
		size     int
		seed     int64
		diagonal bool
		parallel bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all five strategies on one maze and tabulate the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := obtainGrid(cmd, in, size, seed)
			if err != nil {
				return err
			}
			mode := movement(diagonal)
			var reports []compare.Report
			if parallel {
				reports, err = compare.RunParallel(context.Background(), g, mode)
			} else {
				reports, err = compare.Run(g, mode)
			}
			if err != nil {
				return err
			}

			return compare.WriteTable(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "maze file to load (omit to generate)")
	cmd.Flags().IntVar(&size, "size", defaultSize, "maze dimension when generating")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed when generating")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal movement")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "run the strategies concurrently")

	return cmd
}

func newConvertCmd() *cobra.Command {
	var (
		in     string
		pngOut string
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Render a maze file as a PNG image",
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := mazefile.Load(in)
			if err != nil {
				return err
			}
			if err = mazefile.SavePNG(pngOut, g, nil, 0); err != nil {
				return err
			}
			slog.Info("image written", "path", pngOut)

			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "maze file to load")
	cmd.Flags().StringVar(&pngOut, "png", "", "PNG file to write")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("png")

	return cmd
}

// obtainGrid loads a maze file when --in is set, otherwise generates one.
func obtainGrid(cmd *cobra.Command, in string, size int, seed int64) (*maze.Grid, error) {
	if in != "" {
		return mazefile.Load(in)
	}
	opts := []maze.Option{}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, maze.WithSeed(seed))
	}

	return maze.Generate(size, opts...)
}

// movement maps the --diagonal flag onto a MovementMode.
func movement(diagonal bool) search.MovementMode {
	if diagonal {
		return search.Diagonal
	}

	return search.Cardinal
}

// printOutcome reports one solve run on stdout; "no path" is a result line,
// never an error.
func printOutcome(cmd *cobra.Command, algo search.Algorithm, res *search.Result, mode search.MovementMode) {
	w := cmd.OutOrStdout()
	if !res.Solved() {
		fmt.Fprintf(w, "%s (%s): no path found (%d nodes explored in %s)\n",
			algo, mode, res.NodesExplored, res.Elapsed)

		return
	}
	fmt.Fprintf(w, "%s (%s): path of %d cells, cost %.3f, %d nodes explored in %s\n",
		algo, mode, len(res.Path), compare.PathCost(res.Path, mode), res.NodesExplored, res.Elapsed)
}
