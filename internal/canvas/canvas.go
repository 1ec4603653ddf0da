// Package canvas is an in-memory grid of styled cells that widgets draw into
// before the whole frame is written to the terminal in one piece.
package canvas

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/rmon/internal/layout"
)

// ErrOutOfBounds is returned when a cell outside the canvas is addressed.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Style is the look of one cell. The zero Style is the terminal default.
type Style struct {
	Fg   lipgloss.Color
	Bold bool
}

func (s Style) render(text string) string {
	if s == (Style{}) {
		return text
	}
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st.Render(text)
}

// Cell is one terminal cell. The right half of a double-width rune is a
// continuation cell and is never printed on its own.
type Cell struct {
	Rune  rune
	Style Style
	cont  bool
}

var blank = Cell{Rune: ' '}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	bounds layout.Bounds
	cells  []Cell
}

// New creates a blank canvas of the given size. Negative sizes are treated
// as zero.
func New(b layout.Bounds) *Canvas {
	b.Rows = max(b.Rows, 0)
	b.Cols = max(b.Cols, 0)
	c := &Canvas{bounds: b, cells: make([]Cell, b.Rows*b.Cols)}
	for i := range c.cells {
		c.cells[i] = blank
	}
	return c
}

// Bounds returns the canvas size.
func (c *Canvas) Bounds() layout.Bounds {
	return c.bounds
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.bounds.Cols && y < c.bounds.Rows
}

// Set writes a single-width rune at (x, y).
func (c *Canvas) Set(x, y int, r rune, st Style) error {
	if !c.inside(x, y) {
		return ErrOutOfBounds
	}
	c.clearWide(x, y)
	c.cells[y*c.bounds.Cols+x] = Cell{Rune: r, Style: st}
	return nil
}

// setWide writes a double-width rune across (x, y) and (x+1, y).
func (c *Canvas) setWide(x, y int, r rune, st Style) error {
	if !c.inside(x, y) || !c.inside(x+1, y) {
		return ErrOutOfBounds
	}
	c.clearWide(x, y)
	c.clearWide(x+1, y)
	i := y*c.bounds.Cols + x
	c.cells[i] = Cell{Rune: r, Style: st}
	c.cells[i+1] = Cell{Style: st, cont: true}
	return nil
}

// clearWide blanks the other half of any double-width rune touching (x, y).
func (c *Canvas) clearWide(x, y int) {
	i := y*c.bounds.Cols + x
	cell := c.cells[i]
	if cell.cont && x > 0 {
		c.cells[i-1] = blank
	}
	if !cell.cont && runewidth.RuneWidth(cell.Rune) == 2 && x+1 < c.bounds.Cols {
		c.cells[i+1] = blank
	}
}

// At returns the cell at (x, y).
func (c *Canvas) At(x, y int) (Cell, error) {
	if !c.inside(x, y) {
		return Cell{}, ErrOutOfBounds
	}
	return c.cells[y*c.bounds.Cols+x], nil
}

// Lines returns the canvas as plain text, one string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.bounds.Rows)
	var b strings.Builder
	for y := range lines {
		b.Reset()
		for _, cell := range c.row(y) {
			if !cell.cont {
				b.WriteRune(cell.Rune)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// String returns the plain text of the canvas.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Render returns the styled frame. Runs of cells sharing a style are
// rendered together.
func (c *Canvas) Render() string {
	lines := make([]string, c.bounds.Rows)
	var line, run strings.Builder
	for y := range lines {
		line.Reset()
		run.Reset()
		var cur Style
		for _, cell := range c.row(y) {
			if cell.cont {
				continue
			}
			if cell.Style != cur && run.Len() > 0 {
				line.WriteString(cur.render(run.String()))
				run.Reset()
			}
			cur = cell.Style
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			line.WriteString(cur.render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) row(y int) []Cell {
	start := y * c.bounds.Cols
	return c.cells[start : start+c.bounds.Cols]
}
