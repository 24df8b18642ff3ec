package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// Report is the result of one non-interactive render.
type Report struct {
	Source   string          `json:"source"`
	Timeline *model.Timeline `json:"-"`
	Scene    model.Scene     `json:"scene"`
	Selected bool            `json:"selected"`
	Detail   string          `json:"detail"`
}

// Formatter writes a report in one output format.
type Formatter interface {
	Format(w io.Writer, r Report) error
}

// Output formats accepted by New.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatTable   = "table"
	FormatCSV     = "csv"
	FormatSummary = "summary"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatTable, FormatCSV, FormatSummary}

// New returns the formatter for name. width is used by the text format.
func New(name string, width int) (Formatter, error) {
	switch name {
	case FormatText, "":
		return NewTextFormatter(width), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatTable:
		return NewTableFormatter(), nil
	case FormatCSV:
		return NewCSVFormatter(), nil
	case FormatSummary:
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: %v)", name, Formats)
	}
}

// eventRow is one timeline event as table columns.
func eventRow(i int, e model.TimelineEvent) []string {
	return []string{
		fmt.Sprintf("%d", i),
		clock(e),
		fmt.Sprintf("%d", e.Lane),
		e.Object,
		e.Message,
		e.Color,
	}
}

var eventHeaders = []string{"#", "Time", "Lane", "Object", "Message", "Color"}

func clock(e model.TimelineEvent) string {
	return util.FormatClock(e.Timestamp, e.HasFraction)
}
