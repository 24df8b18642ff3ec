package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is the role of a painted cell.
type Style int

const (
	StyleMarker Style = iota
	StyleFocused
	StyleCrosshair
	StyleLabel
	StyleMuted
	StyleTitle
	StyleDetail
)

// Painter decorates text drawn in the given color and role.
type Painter func(text, color string, style Style) string

func plain(text, _ string, _ Style) string {
	return text
}

// Named colors accepted by the layout that lipgloss does not resolve itself.
var namedColors = map[string]string{
	"red":     "#FF0000",
	"white":   "#FFFFFF",
	"black":   "#000000",
	"green":   "#00FF00",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#FFA500",
	"magenta": "#FF00FF",
	"cyan":    "#00FFFF",
}

// ResolveColor maps a layout color to a lipgloss color.
func ResolveColor(color string) lipgloss.Color {
	if hex, ok := namedColors[strings.ToLower(color)]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(color)
}

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
)

// NewPainter returns a painter using lipgloss styles. fontColor is used for
// labels when set.
func NewPainter(fontColor string) Painter {
	label := labelStyle
	if fontColor != "" {
		label = lipgloss.NewStyle().Foreground(ResolveColor(fontColor))
	}

	return func(text, color string, style Style) string {
		switch style {
		case StyleMarker:
			return lipgloss.NewStyle().Foreground(ResolveColor(color)).Render(text)
		case StyleFocused:
			return lipgloss.NewStyle().Foreground(ResolveColor(color)).Bold(true).Reverse(true).Render(text)
		case StyleCrosshair:
			return lipgloss.NewStyle().Foreground(ResolveColor(color)).Render(text)
		case StyleLabel:
			return label.Render(text)
		case StyleMuted:
			return mutedStyle.Render(text)
		case StyleTitle:
			return titleStyle.Render(text)
		case StyleDetail:
			return detailStyle.Render(text)
		default:
			return text
		}
	}
}
