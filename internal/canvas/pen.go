package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/rmon/internal/layout"
)

// Pen draws into one region of a canvas using coordinates relative to the
// region. Cells outside the region or the canvas are dropped and counted.
type Pen struct {
	c       *Canvas
	region  layout.Region
	dropped int
}

// Pen returns a pen scoped to r.
func (c *Canvas) Pen(r layout.Region) *Pen {
	return &Pen{c: c, region: r}
}

// Region returns the region the pen draws into.
func (p *Pen) Region() layout.Region {
	return p.region
}

// Width returns the width of the pen's region.
func (p *Pen) Width() int { return max(p.region.Width, 0) }

// Height returns the height of the pen's region.
func (p *Pen) Height() int { return max(p.region.Height, 0) }

// Dropped returns how many cells were discarded.
func (p *Pen) Dropped() int {
	return p.dropped
}

// Set draws r at (x, y) relative to the region.
func (p *Pen) Set(x, y int, r rune, st Style) {
	if runewidth.RuneWidth(r) == 2 {
		p.setWide(x, y, r, st)
		return
	}
	if !p.region.Contains(p.region.X+x, p.region.Y+y) {
		p.dropped++
		return
	}
	if err := p.c.Set(p.region.X+x, p.region.Y+y, r, st); err != nil {
		p.dropped++
	}
}

func (p *Pen) setWide(x, y int, r rune, st Style) {
	ax, ay := p.region.X+x, p.region.Y+y
	if !p.region.Contains(ax, ay) || !p.region.Contains(ax+1, ay) {
		p.dropped += 2
		return
	}
	if err := p.c.setWide(ax, ay, r, st); err != nil {
		p.dropped += 2
	}
}

// Text draws s starting at (x, y) and returns the column after the last
// rune. Text past the right edge is dropped.
func (p *Pen) Text(x, y int, s string, st Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.Set(x, y, r, st)
		x += w
	}
	return x
}

// Center draws s centred on row y.
func (p *Pen) Center(y int, s string, st Style) {
	x := (p.Width() - runewidth.StringWidth(s)) / 2
	p.Text(max(x, 0), y, s, st)
}

// HLine fills row y from x across n cells with r.
func (p *Pen) HLine(x, y, n int, r rune, st Style) {
	p.Text(x, y, strings.Repeat(string(r), max(n, 0)), st)
}

// VLine fills column x from y down n cells with r.
func (p *Pen) VLine(x, y, n int, r rune, st Style) {
	for i := 0; i < n; i++ {
		p.Set(x, y+i, r, st)
	}
}
