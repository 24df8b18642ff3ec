package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-log-timeline/internal/util"
	"golang.org/x/term"
)

// Terminal dimensions used when stdout is not a terminal.
const (
	DefaultWidth  = 100
	DefaultHeight = 30

	minPlotWidth  = 20
	maxLabelWidth = 24
)

// Sizer splits a terminal area into the lane gutter, the plot and the panels
// below it.
type Sizer struct {
	Width  int
	Height int
}

// NewSizer creates a sizer for a known terminal size.
func NewSizer(width, height int) *Sizer {
	return &Sizer{Width: width, Height: height}
}

// DetectSizer reads the size of the terminal attached to stdout.
func DetectSizer() *Sizer {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		util.LogDebugf("Terminal size unavailable, using %dx%d: %v", DefaultWidth, DefaultHeight, err)
		return NewSizer(DefaultWidth, DefaultHeight)
	}
	util.LogDebugf("Terminal size %dx%d", width, height)
	return NewSizer(width, height)
}

// displayWidth calculates the display width of a string containing wide runes.
func (s Sizer) displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a display width.
func (s Sizer) PadString(text string, width int, leftAlign bool) string {
	actual := s.displayWidth(text)
	if actual >= width {
		return text
	}

	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return text + padding
	}
	return padding + text
}

// LabelWidth returns the width of the lane label column for labels, capped so
// the plot keeps most of the screen.
func (s Sizer) LabelWidth(labels []string) int {
	w := util.MaxWidth(labels)
	if w > maxLabelWidth {
		w = maxLabelWidth
	}
	if limit := s.Width - minPlotWidth - 2; w > limit {
		w = limit
	}
	if w < 1 {
		w = 1
	}
	return w
}

// PlotWidth returns the number of columns left for the plot after a gutter of
// gutter columns.
func (s Sizer) PlotWidth(gutter int) int {
	w := s.Width - gutter - 1
	if w < minPlotWidth {
		w = minPlotWidth
	}
	return w
}

// Fit truncates text to the terminal width.
func (s Sizer) Fit(text string) string {
	return util.Truncate(text, s.Width)
}
