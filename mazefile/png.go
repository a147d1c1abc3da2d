package mazefile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/pathlab/mazeexplorer/maze"
	"github.com/pathlab/mazeexplorer/search"
)

// ErrBadCellSize indicates a non-positive pixel size for PNG export.
var ErrBadCellSize = errors.New("mazefile: cell size must be positive")

// DefaultCellSize is the per-cell pixel size used when callers pass 0.
const DefaultCellSize = 20

// Export palette.
var (
	colorOpen    = color.RGBA{R: 26, G: 31, B: 58, A: 255}
	colorWall    = color.RGBA{R: 45, G: 53, B: 97, A: 255}
	colorStart   = color.RGBA{R: 0, G: 242, B: 195, A: 255}
	colorEnd     = color.RGBA{R: 255, G: 107, B: 157, A: 255}
	colorExplore = color.RGBA{R: 255, G: 217, B: 61, A: 255}
	colorPath    = color.RGBA{R: 255, G: 149, B: 0, A: 255}
	colorOutline = color.RGBA{R: 15, G: 20, B: 25, A: 255}
)

// ExportPNG renders g as a PNG image onto w, one cellSize×cellSize square per
// cell with a one-pixel outline. A non-nil res overlays the search trace:
// explored cells first, path cells on top, then start and end markers.
// Pass cellSize 0 for DefaultCellSize.
func ExportPNG(w io.Writer, g *maze.Grid, res *search.Result, cellSize int) error {
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	if cellSize < 0 {
		return fmt.Errorf("%w: %d", ErrBadCellSize, cellSize)
	}

	n := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, n*cellSize, n*cellSize))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := colorOpen
			if g.At(maze.Position{Row: i, Col: j}) == maze.Wall {
				c = colorWall
			}
			fillCell(img, i, j, cellSize, c)
		}
	}

	if res != nil {
		// Explore marks first, path marks second: later steps overwrite
		// earlier ones, matching the animation's final frame.
		for _, s := range res.Steps {
			c := colorExplore
			if s.Kind == search.StepPath {
				c = colorPath
			}
			fillCell(img, s.Pos.Row, s.Pos.Col, cellSize, c)
		}
	}

	fillCell(img, g.Start().Row, g.Start().Col, cellSize, colorStart)
	fillCell(img, g.End().Row, g.End().Col, cellSize, colorEnd)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("mazefile: encode png: %w", err)
	}

	return nil
}

// SavePNG renders g (and optional trace) to a PNG file at path.
func SavePNG(path string, g *maze.Grid, res *search.Result, cellSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mazefile: create %s: %w", path, err)
	}
	if err = ExportPNG(f, g, res, cellSize); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// fillCell paints one grid cell, leaving a one-pixel outline on its top and
// left edges.
func fillCell(img *image.RGBA, row, col, cellSize int, c color.RGBA) {
	x0, y0 := col*cellSize, row*cellSize
	outline := image.Rect(x0, y0, x0+cellSize, y0+cellSize)
	draw.Draw(img, outline, &image.Uniform{C: colorOutline}, image.Point{}, draw.Src)
	inner := image.Rect(x0+1, y0+1, x0+cellSize, y0+cellSize)
	draw.Draw(img, inner, &image.Uniform{C: c}, image.Point{}, draw.Src)
}
