package formatter

import (
	"io"
	"strings"

	"github.com/penwyp/go-log-timeline/internal/presentation/display"
	"github.com/penwyp/go-log-timeline/internal/presentation/layout"
)

// TextFormatter draws the scene as plain text followed by the detail panel.
type TextFormatter struct {
	width int
}

func NewTextFormatter(width int) *TextFormatter {
	if width <= 0 {
		width = layout.DefaultWidth
	}
	return &TextFormatter{width: width}
}

func (f *TextFormatter) Format(w io.Writer, r Report) error {
	canvas := display.NewCanvas(r.Scene, layout.NewSizer(f.width, layout.DefaultHeight), display.DefaultGlyphs())

	var b strings.Builder
	for _, line := range canvas.Lines(-1, nil) {
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(r.Detail + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
