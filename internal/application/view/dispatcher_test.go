package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/core/selection"
	"github.com/penwyp/go-log-timeline/internal/core/timeline"
	"github.com/penwyp/go-log-timeline/internal/data/source"
	"github.com/penwyp/go-log-timeline/internal/presentation/detail"
	"github.com/penwyp/go-log-timeline/internal/presentation/scene"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(timeline.NewTimelineBuilder(nil), scene.NewRenderer(scene.DefaultLayout()))
}

func TestDispatcher_InitialState(t *testing.T) {
	d := newTestDispatcher()

	assert.True(t, d.Timeline().IsEmpty())
	assert.True(t, d.Scene().IsEmpty())
	assert.Nil(t, d.Scene().Crosshair)
	assert.Equal(t, selection.Unselected, d.Selection().Kind)
	assert.Equal(t, detail.Placeholder, d.Detail())
}

func TestDispatcher_ScenarioA(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText(source.Sample)

	tl := d.Timeline()
	require.Len(t, tl.Events, 2)
	assert.Equal(t, []string{"Hello", "World"}, tl.Lanes.Labels)
	assert.Equal(t, 1, tl.Events[0].Lane)
	assert.Equal(t, 2, tl.Events[1].Lane)
	assert.Equal(t, "Hello", tl.Events[0].Object)

	sc := d.Scene()
	require.Len(t, sc.Markers, 2)
	assert.Nil(t, sc.Crosshair)
}

func TestDispatcher_ScenarioB(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText("garbage\n[01:00:00] <<A>> hi")

	tl := d.Timeline()
	require.Len(t, tl.Events, 1)
	assert.Equal(t, "A", tl.Events[0].Object)
	assert.Equal(t, "hi", tl.Events[0].Message)
	assert.Equal(t, time.Hour, tl.Events[0].TimeOfDay())
}

func TestDispatcher_ScenarioC(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText("")

	assert.True(t, d.Timeline().IsEmpty())
	assert.True(t, d.Scene().IsEmpty())
	assert.Empty(t, d.Scene().YAxis.Ticks)
	assert.Equal(t, detail.Placeholder, d.Detail())
}

func TestDispatcher_ScenarioD(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText(source.Sample)

	ok := d.ClickPayload(model.Payload{
		Timestamp: "2024-01-01T19:58:12.174",
		Object:    "Hello",
		Message:   "Hello, World!",
	})
	require.True(t, ok)

	state := d.Selection()
	assert.Equal(t, selection.Selected, state.Kind)
	assert.True(t, state.EventPresent)

	sc := d.Scene()
	require.NotNil(t, sc.Crosshair)
	assert.True(t, sc.Crosshair.X.Equal(time.Date(2024, 1, 1, 19, 58, 12, 174e6, time.UTC)))
	assert.Equal(t, "Time: 2024-01-01T19:58:12.174\nObject: Hello\nMessage: Hello, World!", d.Detail())
}

func TestDispatcher_ScenarioE(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText("[10:00:00] <<A>> x\n[10:00:00] <<B>> y")

	tl := d.Timeline()
	require.Len(t, tl.Events, 2)
	assert.Equal(t, "A", tl.Events[0].Object)
	assert.Equal(t, "B", tl.Events[1].Object)
}

func TestDispatcher_ClickMarker(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText(source.Sample)

	require.True(t, d.ClickMarker(1))
	state := d.Selection()
	assert.Equal(t, "World", state.Payload.Object)
	require.NotNil(t, d.Scene().Crosshair)
	assert.True(t, d.Scene().Markers[1].X.Equal(d.Scene().Crosshair.X))

	assert.False(t, d.ClickMarker(5))
	assert.Equal(t, "World", d.Selection().Payload.Object)
}

func TestDispatcher_InvalidPayloadKeepsSelection(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText(source.Sample)
	require.True(t, d.ClickMarker(0))
	before := d.Detail()

	assert.False(t, d.ClickPayload(model.Payload{Timestamp: "not a time"}))
	assert.Equal(t, "Hello", d.Selection().Payload.Object)
	assert.Equal(t, before, d.Detail())
}

func TestDispatcher_UpdateKeepsSelectedTime(t *testing.T) {
	t.Run("event still present", func(t *testing.T) {
		d := newTestDispatcher()
		d.SubmitText(source.Sample)
		require.True(t, d.ClickMarker(0))

		d.SubmitText(source.Sample + "\n[21:00:00] <<Extra>> more")

		assert.True(t, d.Selection().EventPresent)
		require.NotNil(t, d.Scene().Crosshair)
		assert.Contains(t, d.Detail(), "Object: Hello")
	})

	t.Run("event gone", func(t *testing.T) {
		d := newTestDispatcher()
		d.SubmitText(source.Sample)
		require.True(t, d.ClickMarker(0))
		selected := d.Selection().Time

		d.SubmitText("[20:58:12.174] <<World>> World, Hello!")

		state := d.Selection()
		assert.Equal(t, selection.Selected, state.Kind)
		assert.False(t, state.EventPresent)
		assert.True(t, state.Time.Equal(selected))
		require.NotNil(t, d.Scene().Crosshair)
		assert.Equal(t, detail.NoEvent, d.Detail())
	})

	t.Run("timeline emptied", func(t *testing.T) {
		d := newTestDispatcher()
		d.SubmitText(source.Sample)
		require.True(t, d.ClickMarker(0))

		d.SubmitText("")

		assert.Equal(t, selection.Selected, d.Selection().Kind)
		assert.Nil(t, d.Scene().Crosshair)
		assert.Equal(t, detail.NoEvent, d.Detail())
	})
}

func TestDispatcher_LongFractionSurvivesRebuild(t *testing.T) {
	const text = "[10:00:00.1234567] <<A>> x"
	d := newTestDispatcher()
	d.SubmitText(text)
	require.True(t, d.ClickMarker(0))
	assert.Equal(t, "Time: 1900-01-01T10:00:00.123456700\nObject: A\nMessage: x", d.Detail())

	d.SubmitText(text)

	state := d.Selection()
	assert.True(t, state.EventPresent)
	assert.Equal(t, "Time: 1900-01-01T10:00:00.123456700\nObject: A\nMessage: x", d.Detail())

	sc := d.Scene()
	require.NotNil(t, sc.Crosshair)
	assert.True(t, sc.Markers[0].X.Equal(sc.Crosshair.X))
}

func TestDispatcher_MarkerDetailUsesClockDate(t *testing.T) {
	d := newTestDispatcher()
	d.SubmitText(source.Sample)
	require.True(t, d.ClickMarker(0))

	assert.Equal(t, "Time: 1900-01-01T19:58:12.174000\nObject: Hello\nMessage: Hello, World!", d.Detail())
}
