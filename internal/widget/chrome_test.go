package widget

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/layout"
	"github.com/stretchr/testify/assert"
)

func render(w Widget, width, height int) []string {
	c := canvas.New(layout.Bounds{Rows: height, Cols: width})
	w.Draw(c.Pen(layout.Region{Width: width, Height: height}))
	lines := c.Lines()
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestBanner(t *testing.T) {
	lines := render(Banner{Lines: Logo}, 30, 5)
	assert.Equal(t, Logo[4], lines[4])
	assert.Len(t, Logo, 5)
}

func TestRule(t *testing.T) {
	assert.Equal(t, []string{"─────"}, render(Rule{}, 5, 1))
}

func TestColumn(t *testing.T) {
	lines := render(Column{Title: "CPU"}, 6, 3)
	assert.Equal(t, []string{"│CPU", "│", "│"}, lines)
}

func TestColumn_Inner(t *testing.T) {
	var c Column
	assert.Equal(t, layout.Region{X: 5, Y: 9, Width: 9, Height: 13}, c.Inner(layout.Region{X: 4, Y: 8, Width: 10, Height: 14}))
	assert.True(t, c.Inner(layout.Region{Width: 1, Height: 14}).Empty())
}

func TestNotice(t *testing.T) {
	n := Notice{Size: layout.Bounds{Rows: 10, Cols: 40}, Floor: layout.Bounds{Rows: 24, Cols: 60}}
	lines := render(n, 40, 10)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Terminal too small")
	assert.Contains(t, joined, "40x10, need 60x24")
	assert.Equal(t, "           Terminal too small", lines[3])
}

func TestNotice_TinyCanvas(t *testing.T) {
	n := Notice{Size: layout.Bounds{Rows: 1, Cols: 5}, Floor: layout.Bounds{Rows: 24, Cols: 60}}
	c := canvas.New(n.Size)
	p := c.Pen(layout.Region{Width: 5, Height: 1})

	n.Draw(p)

	assert.Positive(t, p.Dropped())
}
