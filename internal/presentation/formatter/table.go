package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-log-timeline/internal/util"
)

const maxMessageWidth = 60

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{headers: eventHeaders}
}

func (f *TableFormatter) Format(w io.Writer, r Report) error {
	var rows [][]string
	if r.Timeline != nil {
		for i, e := range r.Timeline.Events {
			row := eventRow(i, e)
			row[4] = util.Truncate(row[4], maxMessageWidth)
			rows = append(rows, row)
		}
	}

	widths := f.calculateColumnWidths(rows)
	var b strings.Builder

	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, row := range rows {
		f.writeRow(&b, row, widths)
	}
	if len(rows) == 0 {
		f.writeRow(&b, []string{"", "", "", "(no events)", "", ""}, widths)
	}
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

// calculateColumnWidths determines the display width of each column
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.MaxWidth([]string{header})
	}
	for _, row := range rows {
		for i, value := range row {
			if w := util.MaxWidth([]string{value}); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if widths[3] < len("(no events)") {
		widths[3] = len("(no events)")
	}
	return widths
}

// writeBorder writes table borders (top, middle, bottom)
func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right + "\n")
}

// writeRow writes a row; the index and lane columns are right-aligned
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		if i == 0 || i == 2 {
			fmt.Fprintf(b, " %s │", util.PadLeft(value, widths[i]))
		} else {
			fmt.Fprintf(b, " %s │", util.PadRight(value, widths[i]))
		}
	}
	b.WriteString("\n")
}
