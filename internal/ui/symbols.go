package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Mesh joined
	SymbolFail    = "✗" // Fatal error
	SymbolPending = "○" // Mesh not joined
)

// Box drawing runes for panel chrome.
const (
	BoxTopLeft     = '╭'
	BoxTopRight    = '╮'
	BoxBottomLeft  = '╰'
	BoxBottomRight = '╯'
	BoxHorizontal  = '─'
	BoxVertical    = '│'
)

// Gauge runes.
const (
	GaugeFilled = '█'
	GaugeEmpty  = '░'
)
