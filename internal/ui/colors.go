package ui

import "github.com/charmbracelet/lipgloss"

// Dashboard palette. Hex values degrade to the nearest ANSI colour on
// terminals without true colour support.
const (
	ColorHealthy  lipgloss.Color = "#39FF14" // Neon green
	ColorWarning  lipgloss.Color = "#FFAA00" // Electric amber
	ColorCritical lipgloss.Color = "#FF0055" // Hot red-pink

	ColorTextPrimary   lipgloss.Color = "#FFFFFF"
	ColorTextSecondary lipgloss.Color = "#B4B4D0" // Lavender gray
	ColorTextMuted     lipgloss.Color = "#6B6B8D" // Purple-gray

	ColorAccent    lipgloss.Color = "#FF2E97" // Neon pink
	ColorAccentDim lipgloss.Color = "#BF40FF" // Neon purple
	ColorInfo      lipgloss.Color = "#00FFFF" // Neon cyan
	ColorBorder    lipgloss.Color = "#2A2A4A" // Purple tint
)

// Thresholds for metric severity levels.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// MetricColor returns the colour for a percentage-based metric:
// green below 70%, amber from 70%, red from 90%.
func MetricColor(percent float64) lipgloss.Color {
	return MetricColorWithThresholds(percent, WarningThreshold, CriticalThreshold)
}

// MetricColorWithThresholds is MetricColor with custom thresholds.
func MetricColorWithThresholds(percent, warning, critical float64) lipgloss.Color {
	switch {
	case percent >= critical:
		return ColorCritical
	case percent >= warning:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// ErrorStyle is used for fatal messages printed before the dashboard starts.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorCritical)
}

// MutedStyle is used for secondary text such as suggestions.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorTextMuted)
}
