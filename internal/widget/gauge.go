package widget

import (
	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/ui"
)

// Gauge is a vertical bar filled from the bottom. It spans the full width
// and height of its region.
type Gauge struct {
	Percent float64
}

// FilledCells returns how many of height cells are filled for percent:
// floor(percent/100 * height), with percent clamped to [0, 100].
func FilledCells(percent float64, height int) int {
	if height <= 0 {
		return 0
	}
	percent = clampPercent(percent)
	filled := int(percent / 100.0 * float64(height))
	if filled > height {
		filled = height
	}
	return filled
}

func clampPercent(p float64) float64 {
	if p < 0 || p != p {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Draw implements Widget.
func (g Gauge) Draw(p *canvas.Pen) {
	h := p.Height()
	filled := FilledCells(g.Percent, h)
	on := canvas.Style{Fg: ui.MetricColor(clampPercent(g.Percent))}
	off := canvas.Style{Fg: ui.ColorBorder}

	for i := 0; i < h; i++ {
		y := h - 1 - i
		r, st := ui.GaugeEmpty, off
		if i < filled {
			r, st = ui.GaugeFilled, on
		}
		p.HLine(0, y, p.Width(), r, st)
	}
}
