package widget

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/gpio"
	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/rileyhilliard/rmon/internal/ui"
)

// NotAvailable is shown for a pin whose read failed.
const NotAvailable = "N/A"

const (
	pinNameWidth  = 6
	pinStateWidth = 3
	// "(NN) " + name + " " + state
	pinCellWidth = 5 + pinNameWidth + 1 + pinStateWidth
	pinCellGap   = 3
)

// PinMap is a two-column table of the physical header, one row per pin
// pair, under a title line.
type PinMap struct {
	Title  string
	Header gpio.Header
	Levels metrics.Reading[metrics.PinLevels]
}

// Height returns the rows the table needs.
func (m PinMap) Height() int {
	return 1 + len(m.Header)
}

// Width returns the columns the table needs.
func (m PinMap) Width() int {
	return max(2*pinCellWidth+pinCellGap, runewidth.StringWidth(m.Title))
}

// State returns what the cell for e shows: the label text for fixed
// entries, otherwise ON, OFF or N/A.
func (m PinMap) State(e gpio.Entry) string {
	if !e.IsPin() {
		return e.Name()
	}
	levels, ok := m.Levels.Get()
	if !ok {
		return NotAvailable
	}
	lvl, ok := levels.Level(e.Line()).Get()
	if !ok {
		return NotAvailable
	}
	return lvl.String()
}

func (m PinMap) cellStyle(e gpio.Entry, state string) canvas.Style {
	switch {
	case !e.IsPin():
		return canvas.Style{Fg: ui.ColorTextMuted}
	case state == NotAvailable:
		return canvas.Style{Fg: ui.ColorWarning}
	case state == gpio.High.String():
		return canvas.Style{Fg: ui.ColorHealthy, Bold: true}
	default:
		return canvas.Style{Fg: ui.ColorTextSecondary}
	}
}

// Draw implements Widget.
func (m PinMap) Draw(p *canvas.Pen) {
	p.Text(0, 0, m.Title, canvas.Style{Fg: ui.ColorAccent, Bold: true})
	for i, row := range m.Header {
		left, right := m.Header.Physical(i)
		y := i + 1
		m.drawCell(p, 0, y, left, row.Left)
		m.drawCell(p, pinCellWidth+pinCellGap, y, right, row.Right)
	}
}

func (m PinMap) drawCell(p *canvas.Pen, x, y, physical int, e gpio.Entry) {
	num := canvas.Style{Fg: ui.ColorTextMuted}
	x = p.Text(x, y, fmt.Sprintf("(%2d) ", physical), num)

	state := m.State(e)
	st := m.cellStyle(e, state)
	if !e.IsPin() {
		p.Text(x, y, state, st)
		return
	}
	x = p.Text(x, y, fmt.Sprintf("%-*s ", pinNameWidth, e.Name()), canvas.Style{Fg: ui.ColorTextSecondary})
	p.Text(x, y, state, st)
}
