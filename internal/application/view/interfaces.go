package view

import (
	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/presentation/display"
	"github.com/penwyp/go-log-timeline/internal/presentation/interaction"
	"github.com/penwyp/go-log-timeline/internal/presentation/layout"
)

// DisplayController handles terminal display operations
type DisplayController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
	// Render draws one frame
	Render(frame display.Frame)
	// CanvasOrigin converts terminal coordinates to canvas coordinates
	CanvasOrigin(termRow, termCol int) (row, col int)
	// NewCanvasFor projects a scene for this display
	NewCanvasFor(sc model.Scene, sizer *layout.Sizer) *display.Canvas
}

// InputHandler processes keyboard and mouse events
type InputHandler interface {
	// Events returns a channel of input events
	Events() <-chan interaction.KeyEvent
	// Close cleans up input handler resources
	Close() error
}

// FileMonitor watches for file changes
type FileMonitor interface {
	// Events returns a channel of file change events
	Events() <-chan model.FileEvent
	// Close stops monitoring and cleans up resources
	Close() error
}
