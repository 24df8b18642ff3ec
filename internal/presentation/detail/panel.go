package detail

import (
	"fmt"
	"io"
	"sync"

	"github.com/penwyp/go-log-timeline/internal/core/selection"
	"github.com/penwyp/go-log-timeline/internal/util"
)

const (
	Placeholder = "Click on an event marker to see details."
	NoEvent     = "No event at this time."
)

// Summary returns the detail text for a selection state.
func Summary(s selection.State) string {
	switch {
	case !s.IsSelected():
		return Placeholder
	case !s.EventPresent:
		return NoEvent
	default:
		return fmt.Sprintf("Time: %s\nObject: %s\nMessage: %s",
			s.Payload.Timestamp, s.Payload.Object, s.Payload.Message)
	}
}

// Panel keeps the latest detail text and optionally mirrors it to a writer.
type Panel struct {
	mu   sync.RWMutex
	text string
	out  io.Writer
}

// NewPanel creates a panel showing the placeholder. out may be nil.
func NewPanel(out io.Writer) *Panel {
	return &Panel{text: Placeholder, out: out}
}

// Present implements selection.Presenter.
func (p *Panel) Present(s selection.State) {
	text := Summary(s)

	p.mu.Lock()
	p.text = text
	out := p.out
	p.mu.Unlock()

	if out == nil {
		return
	}
	if _, err := fmt.Fprintln(out, text); err != nil {
		util.LogWarnf("Failed to write detail panel: %v", err)
	}
}

// Text returns the current detail text.
func (p *Panel) Text() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.text
}

// Lines returns the current detail text split into lines.
func (p *Panel) Lines() []string {
	return util.SplitLines(p.Text())
}
