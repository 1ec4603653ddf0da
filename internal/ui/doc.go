// Package ui holds the shared look of rmon: the colour palette, metric
// severity thresholds and the glyphs used for gauges, boxes and status.
//
// # Color Scheme
//
//	ColorHealthy   (green)  - metric below the warning threshold
//	ColorWarning   (amber)  - metric at or above 70%
//	ColorCritical  (red)    - metric at or above 90%, fatal errors
//	ColorAccent    (pink)   - panel headers
//	ColorInfo      (cyan)   - values and device addresses
//	ColorTextMuted (gray)   - labels, borders and unavailable cells
//
// # Symbols
//
//	SymbolSuccess  (checkmark) - mesh joined
//	SymbolPending  (circle)    - mesh not joined
//	SymbolFail     (X)         - fatal error prefix
package ui
