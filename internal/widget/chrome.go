package widget

import (
	"fmt"

	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/layout"
	"github.com/rileyhilliard/rmon/internal/ui"
)

// Logo is the banner drawn at the top of the dashboard.
var Logo = []string{
	` ____  __  __  ____  _   _ `,
	`|  _ \|  \/  |/ __ \| \ | |`,
	`| |_) | |\/| | |  | |  \| |`,
	`|  _ <| |  | | |  | | |\  |`,
	`|_| \_\_|  |_|\____/|_| \_|`,
}

// Banner draws lines in one style, one per row.
type Banner struct {
	Lines []string
	Style canvas.Style
}

// Draw implements Widget.
func (b Banner) Draw(p *canvas.Pen) {
	for y, l := range b.Lines {
		p.Text(0, y, l, b.Style)
	}
}

// Rule is a horizontal separator across the whole region.
type Rule struct{}

// Draw implements Widget.
func (Rule) Draw(p *canvas.Pen) {
	p.HLine(0, 0, p.Width(), ui.BoxHorizontal, canvas.Style{Fg: ui.ColorBorder})
}

// Column draws a left rule and a header label. The body is drawn by the
// caller into Inner.
type Column struct {
	Title string
}

// Inner returns the part of r left for the column body: right of the rule
// and below the header.
func (Column) Inner(r layout.Region) layout.Region {
	if r.Width < 2 || r.Height < 2 {
		return layout.Region{}
	}
	return layout.Region{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 1, Height: r.Height - 1}
}

// Draw implements Widget.
func (c Column) Draw(p *canvas.Pen) {
	p.VLine(0, 0, p.Height(), ui.BoxVertical, canvas.Style{Fg: ui.ColorBorder})
	p.Text(1, 0, c.Title, canvas.Style{Fg: ui.ColorAccent, Bold: true})
}

// Notice fills the canvas when it is smaller than the layout floor.
type Notice struct {
	Size  layout.Bounds
	Floor layout.Bounds
}

// Lines returns the notice text.
func (n Notice) Lines() []string {
	return []string{
		"Terminal too small",
		fmt.Sprintf("%dx%d, need %dx%d", n.Size.Cols, n.Size.Rows, n.Floor.Cols, n.Floor.Rows),
		"press q to quit",
	}
}

// Draw implements Widget.
func (n Notice) Draw(p *canvas.Pen) {
	lines := n.Lines()
	top := max((p.Height()-len(lines))/2, 0)
	styles := []canvas.Style{
		{Fg: ui.ColorWarning, Bold: true},
		{Fg: ui.ColorTextSecondary},
		{Fg: ui.ColorTextMuted},
	}
	for i, l := range lines {
		p.Center(top+i, l, styles[i])
	}
}
