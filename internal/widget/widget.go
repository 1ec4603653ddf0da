// Package widget draws the dashboard's display concepts onto a canvas.Pen.
//
// Widgets only ever draw through the pen they are given, so they cannot
// write outside their region; anything that does not fit is dropped by the
// pen.
package widget

import "github.com/rileyhilliard/rmon/internal/canvas"

// Widget draws itself into the pen's region.
type Widget interface {
	Draw(p *canvas.Pen)
}
