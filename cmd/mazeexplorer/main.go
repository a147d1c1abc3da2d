// Command mazeexplorer generates grid mazes, solves them with any of five
// search strategies, compares the strategies on one grid, and exports mazes
// as text or PNG.
//
// Usage:
//
//	mazeexplorer generate --size 15 --seed 42 -o maze.txt
//	mazeexplorer solve --algo astar --in maze.txt --diagonal --png solved.png
//	mazeexplorer compare --size 21 --parallel
//	mazeexplorer convert --in maze.txt --png maze.png
//
// "No path found" is a reported outcome, not a failure: the process exits
// nonzero only on real errors (bad input, unwritable output).
package main

import (
	"log/slog"
	"os"
)

func main() {
	logger := newLogger(os.Getenv("MAZE_LOG_LEVEL"))
	slog.SetDefault(logger)

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process-wide slog logger. Level comes from
// MAZE_LOG_LEVEL (debug|info|warn|error), defaulting to info.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
