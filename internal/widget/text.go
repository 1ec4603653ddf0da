package widget

import (
	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/rileyhilliard/rmon/internal/ui"
)

// Field is one label/value line of a TextPanel.
type Field struct {
	Label string
	Value metrics.Reading[string]
	Style canvas.Style
}

// TextPanel is an ordered list of label/value lines. Unavailable fields
// are omitted and later lines move up to close the gap.
type TextPanel struct {
	Fields []Field
}

// Visible returns the fields that will be drawn.
func (t TextPanel) Visible() []Field {
	out := make([]Field, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.Value.Available() {
			out = append(out, f)
		}
	}
	return out
}

// Draw implements Widget.
func (t TextPanel) Draw(p *canvas.Pen) {
	labelStyle := canvas.Style{Fg: ui.ColorTextSecondary}
	for y, f := range t.Visible() {
		x := 0
		if f.Label != "" {
			x = p.Text(0, y, f.Label+": ", labelStyle)
		}
		st := f.Style
		if st == (canvas.Style{}) {
			st = canvas.Style{Fg: ui.ColorTextPrimary}
		}
		p.Text(x, y, f.Value.Or(""), st)
	}
}
