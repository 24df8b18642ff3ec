package selection

import (
	"sync"
	"time"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// Kind is the selection state discriminator.
type Kind int

const (
	Unselected Kind = iota
	Selected
)

func (k Kind) String() string {
	if k == Selected {
		return "selected"
	}
	return "unselected"
}

// State is the current selection. Time and Payload are only meaningful when
// Kind is Selected.
type State struct {
	Kind    Kind
	Time    time.Time
	Payload model.Payload
	// EventPresent is false once a rebuilt timeline no longer holds the
	// selected event. The time is kept either way.
	EventPresent bool
}

// IsSelected reports whether a marker has been clicked.
func (s State) IsSelected() bool {
	return s.Kind == Selected
}

// Presenter receives every selection change.
type Presenter interface {
	Present(State)
}

// Controller owns the selection state machine. Transitions never lead back
// to Unselected.
type Controller struct {
	mu        sync.RWMutex
	state     State
	presenter Presenter
}

// NewController creates an unselected controller. presenter may be nil.
func NewController(presenter Presenter) *Controller {
	c := &Controller{presenter: presenter}
	c.present(c.state)
	return c
}

// State returns a snapshot of the selection.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SelectedTime returns the selected instant, or nil when unselected.
func (c *Controller) SelectedTime() *time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.state.IsSelected() {
		return nil
	}
	t := c.state.Time
	return &t
}

// Click applies a marker payload. A payload whose timestamp cannot be parsed
// leaves the state untouched and returns false.
func (c *Controller) Click(p model.Payload) bool {
	t, err := util.ParseISO(p.Timestamp)
	if err != nil {
		util.LogDebugf("Ignoring click with invalid timestamp %q: %v", p.Timestamp, err)
		return false
	}

	next := State{
		Kind:         Selected,
		Time:         t,
		Payload:      p,
		EventPresent: true,
	}
	c.mu.Lock()
	c.state = next
	c.mu.Unlock()

	c.present(next)
	return true
}

// ClickMarker resolves the marker at index in sc and applies its payload.
// An index outside the scene is ignored.
func (c *Controller) ClickMarker(sc model.Scene, index int) bool {
	if index < 0 || index >= len(sc.Markers) {
		return false
	}
	return c.Click(sc.Markers[index].Payload)
}

// Rebuild carries the selection over to a freshly built timeline. The
// selected time is kept; only the event presence is recomputed.
func (c *Controller) Rebuild(tl *model.Timeline) {
	c.mu.Lock()
	if !c.state.IsSelected() {
		c.mu.Unlock()
		return
	}
	c.state.EventPresent = Contains(tl, c.state)
	next := c.state
	c.mu.Unlock()

	c.present(next)
}

// Contains reports whether tl holds the event identified by s.
func Contains(tl *model.Timeline, s State) bool {
	if tl.IsEmpty() || !s.IsSelected() {
		return false
	}
	want := model.Event{
		Timestamp: s.Time,
		Object:    s.Payload.Object,
		Message:   s.Payload.Message,
	}
	for _, e := range tl.Events {
		if e.SameAs(want) {
			return true
		}
	}
	return false
}

func (c *Controller) present(s State) {
	if c.presenter != nil {
		c.presenter.Present(s)
	}
}
