package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pathlab/mazeexplorer/maze"
)

// Sentinel errors for the text codec. All of them mean the input is not a
// valid maze file; none of them originate in the pathfinding core.
var (
	// ErrEmptyInput indicates the input held no data at all.
	ErrEmptyInput = errors.New("mazefile: empty input")
	// ErrBadHeader indicates a missing or unparseable SIZE:<N> header line.
	ErrBadHeader = errors.New("mazefile: invalid SIZE header")
	// ErrBadRowLength indicates a grid row whose length differs from N.
	ErrBadRowLength = errors.New("mazefile: row length mismatch")
	// ErrBadCell indicates a cell character outside {0,1}.
	ErrBadCell = errors.New("mazefile: cell must be '0' or '1'")
	// ErrRowCount indicates the number of grid rows differs from N.
	ErrRowCount = errors.New("mazefile: row count mismatch")
)

// headerPrefix starts the first line of every maze file.
const headerPrefix = "SIZE:"

// Encode writes g to w in the SIZE:<N> text format.
func Encode(w io.Writer, g *maze.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%d\n", headerPrefix, g.Size()); err != nil {
		return fmt.Errorf("mazefile: write header: %w", err)
	}
	for i := 0; i < g.Size(); i++ {
		for j := 0; j < g.Size(); j++ {
			c := byte('0')
			if g.At(maze.Position{Row: i, Col: j}) == maze.Wall {
				c = '1'
			}
			if err := bw.WriteByte(c); err != nil {
				return fmt.Errorf("mazefile: write row %d: %w", i, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("mazefile: write row %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// Decode reads a maze from r, validating the format in full before any Grid
// is built: header, size range, row lengths, charset, row count.
// Blank trailing lines are tolerated; blank interior lines are not.
func Decode(r io.Reader) (*maze.Grid, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, maze.MaxSize+1)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mazefile: read: %w", err)
	}
	// Drop trailing blank lines only.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	size, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	rows := lines[1:]
	if len(rows) != size {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrRowCount, len(rows), size)
	}

	cells := make([][]maze.CellState, size)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadRowLength, i, len(row), size)
		}
		cells[i] = make([]maze.CellState, size)
		for j := 0; j < size; j++ {
			switch row[j] {
			case '0':
				cells[i][j] = maze.Open
			case '1':
				cells[i][j] = maze.Wall
			default:
				return nil, fmt.Errorf("%w: row %d col %d is %q", ErrBadCell, i, j, row[j])
			}
		}
	}

	g, err := maze.FromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("mazefile: %w", err)
	}

	return g, nil
}

// parseHeader extracts N from a SIZE:<N> line.
// A size outside the legal range wraps maze.ErrInvalidSize so callers can
// branch on it with errors.Is.
func parseHeader(line string) (int, error) {
	rest, ok := strings.CutPrefix(line, headerPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	size, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if size < maze.MinSize || size > maze.MaxSize {
		return 0, fmt.Errorf("mazefile: header size %d: %w", size, maze.ErrInvalidSize)
	}

	return size, nil
}

// Save writes g to a file at path, creating or truncating it.
func Save(path string, g *maze.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mazefile: create %s: %w", path, err)
	}
	if err = Encode(f, g); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Load reads a maze from the file at path.
func Load(path string) (*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
