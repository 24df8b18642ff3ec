package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// SummaryFormatter reports per-lane statistics.
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

type laneStats struct {
	count       int
	first, last model.TimelineEvent
}

// Format writes one line per lane followed by the overall time range.
func (f *SummaryFormatter) Format(w io.Writer, r Report) error {
	var b strings.Builder
	tl := r.Timeline

	b.WriteString("=== Timeline Summary ===\n")
	if tl.IsEmpty() {
		b.WriteString("No events.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	stats := make(map[string]*laneStats, tl.Lanes.Len())
	for _, e := range tl.Events {
		s, ok := stats[e.Object]
		if !ok {
			s = &laneStats{first: e}
			stats[e.Object] = s
		}
		s.count++
		s.last = e
	}

	width := util.MaxWidth(tl.Lanes.Labels)
	for i, label := range tl.Lanes.Labels {
		s := stats[label]
		fmt.Fprintf(&b, "%2d  %s  %s  %3d events  %s → %s\n",
			i+1,
			util.PadRight(label, width),
			tl.Colors[label],
			s.count,
			clock(s.first),
			clock(s.last))
	}

	first, last := tl.Events[0], tl.Events[len(tl.Events)-1]
	fmt.Fprintf(&b, "\nEvents: %d  Lanes: %d  Range: %s → %s\n",
		len(tl.Events), tl.Lanes.Len(), clock(first), clock(last))

	_, err := io.WriteString(w, b.String())
	return err
}
