package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most width display cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft pads s with leading spaces to the given display width.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// MaxWidth returns the widest display width among values.
func MaxWidth(values []string) int {
	max := 0
	for _, v := range values {
		if w := runewidth.StringWidth(v); w > max {
			max = w
		}
	}
	return max
}

// SplitLines splits text on newlines and drops a single trailing empty line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
