package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/presentation/layout"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// Rows above the canvas: title and a blank line.
const canvasTop = 2

// Config controls the terminal surface.
type Config struct {
	Mouse     bool
	Glyphs    Glyphs
	FontColor string
	Out       io.Writer
}

// Frame is everything drawn in one refresh.
type Frame struct {
	Source string
	Canvas *Canvas
	Detail []string
	State  model.InteractionState
}

type TerminalDisplay struct {
	config            Config
	out               io.Writer
	paint             Painter
	inAlternateScreen bool
	currentMode       model.DisplayMode
	isFirstRender     bool
}

func NewTerminalDisplay(config Config) *TerminalDisplay {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	if config.Glyphs == (Glyphs{}) {
		config.Glyphs = DefaultGlyphs()
	}
	return &TerminalDisplay{
		config:        config,
		out:           out,
		paint:         NewPainter(config.FontColor),
		currentMode:   model.ModeNormal,
		isFirstRender: true,
	}
}

// Glyphs returns the glyph set used for canvases.
func (td *TerminalDisplay) Glyphs() Glyphs {
	return td.config.Glyphs
}

// EnterAlternateScreen switches to the alternate screen buffer and turns on
// mouse reporting when configured.
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.EnterAltScreen, util.ClearScreen, util.MoveCursorHome, util.HideCursor)
	if td.config.Mouse {
		fmt.Fprint(td.out, util.EnableMouse, util.EnableSGRMouse)
	}
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to the normal screen buffer.
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	if td.config.Mouse {
		fmt.Fprint(td.out, util.DisableSGRMouse, util.DisableMouse)
	}
	fmt.Fprint(td.out, util.ClearScreen, util.MoveCursorHome, util.ShowCursor, util.ExitAltScreen)
	td.inAlternateScreen = false
}

// CanvasOrigin converts 1-based terminal coordinates to canvas coordinates.
func (td *TerminalDisplay) CanvasOrigin(termRow, termCol int) (row, col int) {
	return termRow - 1 - canvasTop, termCol - 1
}

// Render draws a frame, clearing the screen when the display mode changes.
func (td *TerminalDisplay) Render(frame Frame) {
	mode := modeOf(frame.State)
	if td.isFirstRender || mode != td.currentMode {
		fmt.Fprint(td.out, util.ClearScreen)
		td.isFirstRender = false
		td.currentMode = mode
	}
	fmt.Fprint(td.out, util.MoveCursorHome)

	var lines []string
	if mode == model.ModeHelp {
		lines = HelpLines()
	} else {
		lines = td.Compose(frame, td.paint)
	}
	for _, line := range lines {
		fmt.Fprint(td.out, line, util.ClearToLineEnd, "\n")
	}
	fmt.Fprint(td.out, util.ClearToScreenEnd)
}

func modeOf(state model.InteractionState) model.DisplayMode {
	switch {
	case state.ShowHelp:
		return model.ModeHelp
	case state.IsLoading:
		return model.ModeLoading
	default:
		return model.ModeNormal
	}
}

// Compose lays out the title, the canvas, the detail panel and the status
// line of a frame.
func (td *TerminalDisplay) Compose(frame Frame, paint Painter) []string {
	if paint == nil {
		paint = plain
	}
	sc := frame.Canvas.Scene()

	title := fmt.Sprintf("go-log-timeline  %s  %d events, %d lanes",
		frame.Source, len(sc.Markers), len(sc.YAxis.Ticks))
	if frame.State.IsPaused {
		title += "  [watch paused]"
	}
	lines := []string{paint(title, "", StyleTitle), ""}
	lines = append(lines, frame.Canvas.Lines(frame.State.Cursor, paint)...)

	lines = append(lines, "", paint("Detail", "", StyleTitle))
	for _, l := range frame.Detail {
		lines = append(lines, paint("  "+l, "", StyleDetail))
	}
	lines = append(lines, "")

	for _, l := range StatusLines(frame) {
		lines = append(lines, paint(l, "", StyleMuted))
	}
	return lines
}

// StatusLines returns the hover text of the focused marker, the crosshair
// position and the status message.
func StatusLines(frame Frame) []string {
	sc := frame.Canvas.Scene()
	var lines []string

	if c := frame.State.Cursor; c >= 0 && c < len(sc.Markers) {
		lines = append(lines, "▸ "+sc.Markers[c].Text)
	}
	if sc.Crosshair != nil {
		at := util.FormatClock(sc.Crosshair.X, sc.Crosshair.X.Nanosecond() != 0)
		if _, ok := frame.Canvas.CrosshairColumn(); ok {
			lines = append(lines, "Selected time: "+at)
		} else {
			lines = append(lines, "Selected time: "+at+" (outside the plotted range)")
		}
	}
	if frame.State.StatusMessage != "" {
		lines = append(lines, "Status: "+frame.State.StatusMessage)
	}
	lines = append(lines, "←/→ move  ↑/↓ lane  enter select  r reload  p pause  h help  q quit")
	return lines
}

// HelpLines returns the help screen.
func HelpLines() []string {
	return []string{
		"go-log-timeline - Help",
		strings.Repeat("═", 60),
		"",
		"Keyboard Shortcuts:",
		"",
		"  ←/→        - Focus previous/next event in time",
		"  ↑/↓        - Focus nearest event in the lane above/below",
		"  Enter/Space - Select the focused event",
		"  Mouse click - Select the clicked event",
		"  r          - Reload the source",
		"  p          - Pause/unpause reloading on file changes",
		"  h          - Show this help",
		"  q/Esc/Ctrl+C - Quit",
		"",
		"Markers:",
		"  ● event    ◉ several events in one cell    ┊ selected time",
		"",
		strings.Repeat("═", 60),
		"Press 'h' to return...",
	}
}

// NewCanvasFor projects sc using the display glyphs.
func (td *TerminalDisplay) NewCanvasFor(sc model.Scene, sizer *layout.Sizer) *Canvas {
	return NewCanvas(sc, sizer, td.config.Glyphs)
}
