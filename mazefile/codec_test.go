package mazefile_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pathlab/mazeexplorer/maze"
	"github.com/pathlab/mazeexplorer/mazefile"
)

// validBody builds a well-formed 10×10 maze file: full wall border, open
// interior.
func validBody() string {
	var sb strings.Builder
	sb.WriteString("SIZE:10\n")
	sb.WriteString("1111111111\n")
	for i := 0; i < 8; i++ {
		sb.WriteString("1000000001\n")
	}
	sb.WriteString("1111111111\n")

	return sb.String()
}

// TestDecode_Valid parses a well-formed file.
func TestDecode_Valid(t *testing.T) {
	g, err := mazefile.Decode(strings.NewReader(validBody()))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if g.Size() != 10 {
		t.Errorf("Size() = %d; want 10", g.Size())
	}
	if !g.IsOpen(maze.Position{Row: 4, Col: 4}) {
		t.Error("interior cell (4,4) should be Open")
	}
	if g.At(maze.Position{Row: 0, Col: 0}) != maze.Wall {
		t.Error("border cell (0,0) should be Wall")
	}
}

// TestDecode_Errors walks the validation matrix: header, size range, row
// length, charset, row count.
func TestDecode_Errors(t *testing.T) {
	valid := validBody()
	lines := strings.Split(strings.TrimSuffix(valid, "\n"), "\n")

	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", mazefile.ErrEmptyInput},
		{"BlankLinesOnly", "\n\n\n", mazefile.ErrEmptyInput},
		{"NoHeader", strings.Join(lines[1:], "\n") + "\n", mazefile.ErrBadHeader},
		{"UnparseableHeader", "SIZE:ten\n" + strings.Join(lines[1:], "\n") + "\n", mazefile.ErrBadHeader},
		{"SizeTooSmall", strings.Replace(valid, "SIZE:10", "SIZE:9", 1), maze.ErrInvalidSize},
		{"SizeTooLarge", strings.Replace(valid, "SIZE:10", "SIZE:31", 1), maze.ErrInvalidSize},
		{"ShortRow", strings.Replace(valid, "1000000001", "100000001", 1), mazefile.ErrBadRowLength},
		{"LongRow", strings.Replace(valid, "1000000001", "10000000011", 1), mazefile.ErrBadRowLength},
		{"BadCell", strings.Replace(valid, "1000000001", "10000x0001", 1), mazefile.ErrBadCell},
		{"MissingRow", strings.Join(lines[:10], "\n") + "\n", mazefile.ErrRowCount},
		{"ExtraRow", valid + "1111111111\n", mazefile.ErrRowCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mazefile.Decode(strings.NewReader(tc.input))
			if !errors.Is(err, tc.err) {
				t.Errorf("Decode error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestDecode_ReassertsInvariants verifies that start/end come back Open even
// when the file claims otherwise.
func TestDecode_ReassertsInvariants(t *testing.T) {
	body := validBody()
	// Wall the start cell (row 1, col 1) in the raw text.
	body = strings.Replace(body, "1000000001", "1100000001", 1)
	g, err := mazefile.Decode(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !g.IsOpen(g.Start()) {
		t.Error("start must be forced Open on load")
	}
}

// TestRoundTrip verifies Encode→Decode reproduces generated grids exactly.
func TestRoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g, err := maze.Generate(15, maze.WithSeed(seed))
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		var buf bytes.Buffer
		if err = mazefile.Encode(&buf, g); err != nil {
			t.Fatalf("Encode error: %v", err)
		}
		got, err := mazefile.Decode(&buf)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if !g.Equal(got) {
			t.Errorf("seed %d: round-trip altered the grid", seed)
		}
	}
}

// TestSaveLoad exercises the file-backed helpers.
func TestSaveLoad(t *testing.T) {
	g, err := maze.Generate(12, maze.WithSeed(4))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err = mazefile.Save(path, g); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := mazefile.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !g.Equal(got) {
		t.Error("Save/Load round-trip altered the grid")
	}
}
