package monitor

import (
	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/ui"
)

// Dashboard text.
const (
	Title      = "Raspberry Pi Monitor (press 'q' to quit)"
	PinTitle   = "GPIO Layout (physical)"
	DeviceName = "I2C Devices"
)

// Cell styles per panel.
var (
	logoStyle  = canvas.Style{Fg: ui.ColorCritical, Bold: true}
	titleStyle = canvas.Style{Fg: ui.ColorTextPrimary, Bold: true}
	memStyle   = canvas.Style{Fg: ui.ColorInfo}
	diskStyle  = canvas.Style{Fg: ui.ColorWarning}
	netStyle   = canvas.Style{Fg: ui.ColorTextPrimary}
	sysStyle   = canvas.Style{Fg: ui.ColorAccentDim}
)

// coreStyle colours a per-core label by load.
func coreStyle(percent float64) canvas.Style {
	return canvas.Style{Fg: ui.MetricColor(percent)}
}
