package model

// LaneAssignment maps object labels to 1-based lanes.
type LaneAssignment struct {
	Labels []string       // sorted, de-duplicated
	Index  map[string]int // label -> lane
}

// Lane returns the lane of label, or 0 when the label is unknown.
func (la LaneAssignment) Lane(label string) int {
	return la.Index[label]
}

// Len returns the number of lanes.
func (la LaneAssignment) Len() int {
	return len(la.Labels)
}

// ColorAssignment maps object labels to palette colors.
type ColorAssignment map[string]string

// TimelineEvent is an event enriched with its render metadata.
type TimelineEvent struct {
	Event
	Lane  int
	Color string
	Label string
}

// Timeline is the model derived from one parse. It is rebuilt wholesale on
// every parse and never patched.
type Timeline struct {
	Events []TimelineEvent
	Lanes  LaneAssignment
	Colors ColorAssignment
}

// IsEmpty reports whether the timeline has no events.
func (t *Timeline) IsEmpty() bool {
	return t == nil || len(t.Events) == 0
}

// EmptyTimeline returns the explicit empty model.
func EmptyTimeline() *Timeline {
	return &Timeline{
		Events: []TimelineEvent{},
		Lanes:  LaneAssignment{Labels: []string{}, Index: map[string]int{}},
		Colors: ColorAssignment{},
	}
}
