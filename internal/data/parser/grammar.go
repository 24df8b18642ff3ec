package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// linePattern matches `[HH:MM:SS(.fraction)] <<object>> message`.
var linePattern = regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2}(?:\.\d+)?)\]\s+<<([^>]+)>>(?:\s+(.*))?$`)

// clockLayouts are tried in order; the fractional layout comes first.
var clockLayouts = []string{
	"15:04:05.999999999",
	"15:04:05",
}

// Parse turns raw multi-line text into events in input order. Lines that do
// not match the grammar, or whose time cannot be parsed, are left out.
func Parse(raw string) []model.Event {
	events := make([]model.Event, 0)
	for i, line := range strings.Split(raw, "\n") {
		if event, ok := ParseLine(line, i+1); ok {
			events = append(events, event)
		}
	}
	return events
}

// ParseLine parses a single line. lineNum is recorded on the event.
func ParseLine(line string, lineNum int) (model.Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.Event{}, false
	}

	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		return model.Event{}, false
	}

	object := strings.TrimSpace(match[2])
	if object == "" {
		return model.Event{}, false
	}

	ts, err := parseClock(match[1])
	if err != nil {
		return model.Event{}, false
	}

	return model.Event{
		Timestamp:   ts,
		HasFraction: strings.Contains(match[1], "."),
		Object:      object,
		Message:     match[3],
		Line:        lineNum,
	}, true
}

func parseClock(value string) (time.Time, error) {
	var err error
	for _, layout := range clockLayouts {
		var ts time.Time
		if ts, err = time.Parse(layout, value); err == nil {
			return util.AnchorClock(ts), nil
		}
	}
	return time.Time{}, err
}
