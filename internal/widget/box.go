package widget

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/rileyhilliard/rmon/internal/ui"
)

const (
	// BoxChrome is the rows taken by the top and bottom border.
	BoxChrome = 2
	// MaxBoxRows is the most interior rows a BoxList shows.
	MaxBoxRows = 8
)

// Placeholder lines for a BoxList with nothing to list.
const (
	EmptyText       = "0 items"
	UnavailableText = "scan unavailable"
)

// BoxList is a bordered list whose height follows its item count. The title
// sits in the top border.
type BoxList struct {
	Title string
	Items metrics.Reading[[]string]
}

// Lines returns the interior rows: one per item up to MaxBoxRows, otherwise
// MaxBoxRows-1 items and a "+K more" line.
func (b BoxList) Lines() []string {
	items, ok := b.Items.Get()
	switch {
	case !ok:
		return []string{UnavailableText}
	case len(items) == 0:
		return []string{EmptyText}
	case len(items) <= MaxBoxRows:
		return items
	}
	shown := MaxBoxRows - 1
	lines := make([]string, 0, MaxBoxRows)
	lines = append(lines, items[:shown]...)
	return append(lines, fmt.Sprintf("+%d more", len(items)-shown))
}

// Height returns the rows the box needs, border included.
func (b BoxList) Height() int {
	return len(b.Lines()) + BoxChrome
}

// Width returns the columns the box needs to show its title and lines.
func (b BoxList) Width() int {
	w := runewidth.StringWidth(b.Title) + 6 // "╭─ " title " ─╮"
	for _, l := range b.Lines() {
		w = max(w, runewidth.StringWidth(l)+4) // "│ " line " │"
	}
	return w
}

// Draw implements Widget. The box fills the pen's region; rows beyond the
// region are dropped by the pen.
func (b BoxList) Draw(p *canvas.Pen) {
	w, h := p.Width(), p.Height()
	if w < 2 || h < 1 {
		return
	}
	border := canvas.Style{Fg: ui.ColorTextMuted}
	title := canvas.Style{Fg: ui.ColorAccentDim, Bold: true}
	item := canvas.Style{Fg: ui.ColorInfo}

	p.Set(0, 0, ui.BoxTopLeft, border)
	p.HLine(1, 0, w-2, ui.BoxHorizontal, border)
	p.Set(w-1, 0, ui.BoxTopRight, border)
	if b.Title != "" && w > 6 {
		end := p.Text(2, 0, " ", border)
		end = p.Text(end, 0, runewidth.Truncate(b.Title, w-6, ""), title)
		p.Text(end, 0, " ", border)
	}

	lines := b.Lines()
	if _, ok := b.Items.Get(); !ok || (len(lines) == 1 && lines[0] == EmptyText) {
		item = border
	}
	for i := 1; i < h-1; i++ {
		p.Set(0, i, ui.BoxVertical, border)
		p.Set(w-1, i, ui.BoxVertical, border)
		if i-1 < len(lines) {
			p.Text(2, i, runewidth.Truncate(lines[i-1], max(w-4, 0), ""), item)
		}
	}

	if h >= 2 {
		p.Set(0, h-1, ui.BoxBottomLeft, border)
		p.HLine(1, h-1, w-2, ui.BoxHorizontal, border)
		p.Set(w-1, h-1, ui.BoxBottomRight, border)
	}
}
