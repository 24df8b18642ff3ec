package view

import (
	"sync"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/core/selection"
	"github.com/penwyp/go-log-timeline/internal/core/timeline"
	"github.com/penwyp/go-log-timeline/internal/data/parser"
	"github.com/penwyp/go-log-timeline/internal/presentation/detail"
	"github.com/penwyp/go-log-timeline/internal/presentation/scene"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// Dispatcher owns the current timeline, its scene and the selection. All
// triggers go through it one at a time.
type Dispatcher struct {
	mu        sync.Mutex
	builder   *timeline.TimelineBuilder
	renderer  *scene.Renderer
	panel     *detail.Panel
	selection *selection.Controller

	timeline *model.Timeline
	scene    model.Scene
}

// NewDispatcher starts with an empty timeline and no selection.
func NewDispatcher(builder *timeline.TimelineBuilder, renderer *scene.Renderer) *Dispatcher {
	panel := detail.NewPanel(nil)
	d := &Dispatcher{
		builder:   builder,
		renderer:  renderer,
		panel:     panel,
		selection: selection.NewController(panel),
		timeline:  model.EmptyTimeline(),
	}
	d.scene = renderer.Render(d.timeline, nil)
	return d
}

// SubmitText parses text and replaces the timeline with it.
func (d *Dispatcher) SubmitText(text string) {
	d.Update(parser.Parse(text))
}

// Update rebuilds the timeline from events. The selected time survives the
// rebuild.
func (d *Dispatcher) Update(events []model.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.timeline = d.builder.Build(events)
	d.selection.Rebuild(d.timeline)
	d.scene = d.renderer.Render(d.timeline, d.selection.SelectedTime())

	util.LogDebug("timeline rebuilt",
		util.F("events", len(d.timeline.Events)),
		util.F("lanes", d.timeline.Lanes.Len()))
}

// ClickMarker selects the marker at index in the current scene.
func (d *Dispatcher) ClickMarker(index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.selection.ClickMarker(d.scene, index) {
		return false
	}
	d.scene = d.renderer.Render(d.timeline, d.selection.SelectedTime())
	return true
}

// ClickPayload selects using marker data delivered from outside. The
// payload is trusted as is; an unparsable timestamp changes nothing.
func (d *Dispatcher) ClickPayload(p model.Payload) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.selection.Click(p) {
		return false
	}
	d.scene = d.renderer.Render(d.timeline, d.selection.SelectedTime())
	return true
}

// Scene returns the current scene.
func (d *Dispatcher) Scene() model.Scene {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scene
}

// Timeline returns the current timeline.
func (d *Dispatcher) Timeline() *model.Timeline {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timeline
}

// Selection returns the selection state.
func (d *Dispatcher) Selection() selection.State {
	return d.selection.State()
}

// Detail returns the detail panel text.
func (d *Dispatcher) Detail() string {
	return d.panel.Text()
}

// DetailLines returns the detail panel text as lines.
func (d *Dispatcher) DetailLines() []string {
	return d.panel.Lines()
}
