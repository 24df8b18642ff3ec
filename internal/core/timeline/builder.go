package timeline

import (
	"fmt"
	"sort"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// TimelineBuilder derives the lane, color and ordering model from events.
type TimelineBuilder struct {
	palette []string
}

// NewTimelineBuilder creates a builder using palette, or DefaultPalette when
// palette is empty.
func NewTimelineBuilder(palette []string) *TimelineBuilder {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	p := make([]string, len(palette))
	copy(p, palette)
	return &TimelineBuilder{palette: p}
}

// Palette returns a copy of the builder palette.
func (tb *TimelineBuilder) Palette() []string {
	p := make([]string, len(tb.palette))
	copy(p, tb.palette)
	return p
}

// Build derives the timeline model. It never fails; no events yields the
// explicit empty timeline.
func (tb *TimelineBuilder) Build(events []model.Event) *model.Timeline {
	if len(events) == 0 {
		return model.EmptyTimeline()
	}

	lanes := AssignLanes(events)
	colors := AssignColors(lanes, tb.palette)

	entries := make([]model.TimelineEvent, len(events))
	for i, e := range events {
		entries[i] = model.TimelineEvent{
			Event: e,
			Lane:  lanes.Lane(e.Object),
			Color: colors[e.Object],
			Label: FormatLabel(e),
		}
	}

	// Equal timestamps keep their parse order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TimeOfDay() < entries[j].TimeOfDay()
	})

	return &model.Timeline{
		Events: entries,
		Lanes:  lanes,
		Colors: colors,
	}
}

// AssignLanes maps each distinct object to its 1-based position in sorted
// order. The result depends only on the set of objects.
func AssignLanes(events []model.Event) model.LaneAssignment {
	seen := make(map[string]struct{}, len(events))
	labels := make([]string, 0)
	for _, e := range events {
		if _, ok := seen[e.Object]; ok {
			continue
		}
		seen[e.Object] = struct{}{}
		labels = append(labels, e.Object)
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i + 1
	}
	return model.LaneAssignment{Labels: labels, Index: index}
}

// AssignColors gives each lane label palette[i mod len(palette)] in lane order.
func AssignColors(lanes model.LaneAssignment, palette []string) model.ColorAssignment {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	colors := make(model.ColorAssignment, len(lanes.Labels))
	for i, label := range lanes.Labels {
		colors[label] = PaletteColor(palette, i)
	}
	return colors
}

// FormatLabel renders the hover text of an event.
func FormatLabel(e model.Event) string {
	return fmt.Sprintf("%s - <<%s>> %s", util.FormatClock(e.Timestamp, e.HasFraction), e.Object, e.Message)
}
