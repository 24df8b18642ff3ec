package scene

import (
	"time"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// Crosshair styling and vertical overshoot around the lane range.
const (
	CrosshairColor = "red"
	CrosshairDash  = "dash"
	CrosshairWidth = 2

	crosshairBelow = 0.8
	crosshairAbove = 0.2

	AxisFormat = util.ClockLayout
)

// DefaultLayout returns the presentation constants of the timeline view.
func DefaultLayout() model.Layout {
	return model.Layout{
		Height:          600,
		Margin:          20,
		PaperBackground: "#343432",
		PlotBackground:  "#343432",
		FontFamily:      "Monospace",
		FontColor:       "white",
		FontSize:        14,
		MarkerSize:      12,
		MarkerSymbol:    "circle",
		MarkerLineColor: "white",
		MarkerLineWidth: 1,
		GridColor:       "#555555",
	}
}

// Renderer turns a timeline model into a Scene.
type Renderer struct {
	layout model.Layout
}

// NewRenderer creates a renderer that stamps layout onto every scene.
func NewRenderer(layout model.Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Layout returns the renderer's layout constants.
func (r *Renderer) Layout() model.Layout {
	return r.layout
}

// Render builds the scene for tl. When selected is non-nil and the timeline
// has events, a crosshair is added at *selected; it does not influence the
// markers or the axis domain.
func (r *Renderer) Render(tl *model.Timeline, selected *time.Time) model.Scene {
	sc := model.Scene{
		Markers: []model.Marker{},
		YAxis:   model.LaneAxis{Ticks: []model.Tick{}, GridColor: r.layout.GridColor},
		XAxis:   model.TimeAxis{Format: AxisFormat, GridColor: r.layout.GridColor},
		Layout:  r.layout,
	}
	if tl.IsEmpty() {
		return sc
	}

	sc.Markers = make([]model.Marker, len(tl.Events))
	for i, e := range tl.Events {
		sc.Markers[i] = model.Marker{
			Index:   i,
			X:       e.Timestamp,
			Y:       e.Lane,
			Color:   e.Color,
			Text:    e.Label,
			Payload: PayloadOf(e.Event),
		}
	}

	sc.YAxis.Ticks = make([]model.Tick, tl.Lanes.Len())
	for i, label := range tl.Lanes.Labels {
		sc.YAxis.Ticks[i] = model.Tick{Value: i + 1, Label: label}
	}

	// Events are sorted, so the domain is the first and last timestamp.
	sc.XAxis.Min = tl.Events[0].Timestamp
	sc.XAxis.Max = tl.Events[len(tl.Events)-1].Timestamp

	if selected != nil {
		sc.Crosshair = &model.Crosshair{
			X:     *selected,
			Y0:    crosshairBelow,
			Y1:    float64(tl.Lanes.Len()) + crosshairAbove,
			Color: CrosshairColor,
			Dash:  CrosshairDash,
			Width: CrosshairWidth,
		}
	}
	return sc
}

// PayloadOf builds the data attached to the marker of e.
func PayloadOf(e model.Event) model.Payload {
	return model.Payload{
		Timestamp: util.FormatISO(e.Timestamp),
		Object:    e.Object,
		Message:   e.Message,
	}
}
