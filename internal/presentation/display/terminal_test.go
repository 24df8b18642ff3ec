package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestComposeFrame(t *testing.T) {
	td := NewTerminalDisplay(Config{Out: &bytes.Buffer{}})
	frame := Frame{
		Source: "sample",
		Canvas: newCanvas(render(defaultText, nil)),
		Detail: []string{"Click on an event marker to see details."},
		State:  model.InteractionState{Cursor: 0},
	}

	lines := td.Compose(frame, nil)
	text := strings.Join(lines, "\n")

	assert.Equal(t, "go-log-timeline  sample  2 events, 2 lanes", lines[0])
	assert.Equal(t, "World │"+strings.Repeat(" ", 31)+"●", lines[2])
	assert.Contains(t, text, "  Click on an event marker to see details.")
	assert.Contains(t, text, "▸ 19:58:12.174 - <<Hello>> Hello, World!")
	assert.NotContains(t, text, "Selected time")
}

func TestStatusLinesCrosshair(t *testing.T) {
	inside := time.Date(2024, 1, 1, 19, 58, 12, 174000000, time.UTC)
	outside := time.Date(0, 1, 1, 3, 0, 0, 0, time.UTC)

	lines := StatusLines(Frame{Canvas: newCanvas(render(defaultText, &inside)), State: model.InteractionState{Cursor: -1}})
	assert.Contains(t, lines, "Selected time: 19:58:12.174")

	lines = StatusLines(Frame{
		Canvas: newCanvas(render(defaultText, &outside)),
		State:  model.InteractionState{Cursor: -1, StatusMessage: "reloaded"},
	})
	assert.Contains(t, lines, "Selected time: 03:00:00 (outside the plotted range)")
	assert.Contains(t, lines, "Status: reloaded")
}

func TestCanvasOrigin(t *testing.T) {
	td := NewTerminalDisplay(Config{Out: &bytes.Buffer{}})
	row, col := td.CanvasOrigin(3, 8)
	assert.Equal(t, 0, row)
	assert.Equal(t, 7, col)
}

func TestRenderWritesScreen(t *testing.T) {
	var buf bytes.Buffer
	td := NewTerminalDisplay(Config{Out: &buf, Mouse: true})

	td.EnterAlternateScreen()
	assert.Contains(t, buf.String(), util.EnterAltScreen)
	assert.Contains(t, buf.String(), util.EnableSGRMouse)

	buf.Reset()
	frame := Frame{Source: "sample", Canvas: newCanvas(render(defaultText, nil)), State: model.InteractionState{Cursor: -1}}
	td.Render(frame)
	assert.True(t, strings.HasPrefix(buf.String(), util.ClearScreen+util.MoveCursorHome))
	assert.Contains(t, buf.String(), "World │")

	buf.Reset()
	td.Render(frame)
	assert.True(t, strings.HasPrefix(buf.String(), util.MoveCursorHome))

	buf.Reset()
	frame.State.ShowHelp = true
	td.Render(frame)
	assert.True(t, strings.HasPrefix(buf.String(), util.ClearScreen))
	assert.Contains(t, buf.String(), "Keyboard Shortcuts:")

	buf.Reset()
	td.ExitAlternateScreen()
	assert.Contains(t, buf.String(), util.DisableSGRMouse)
	assert.Contains(t, buf.String(), util.ExitAltScreen)
}

func TestDefaultGlyphsApplied(t *testing.T) {
	td := NewTerminalDisplay(Config{Out: &bytes.Buffer{}})
	assert.Equal(t, DefaultGlyphs(), td.Glyphs())

	custom := Glyphs{Marker: "*", Cluster: "#", Crosshair: "|"}
	td = NewTerminalDisplay(Config{Out: &bytes.Buffer{}, Glyphs: custom})
	assert.Equal(t, custom, td.Glyphs())
}
