package view

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/core/timeline"
	"github.com/penwyp/go-log-timeline/internal/data/source"
	"github.com/penwyp/go-log-timeline/internal/monitoring"
	"github.com/penwyp/go-log-timeline/internal/presentation/display"
	"github.com/penwyp/go-log-timeline/internal/presentation/interaction"
	"github.com/penwyp/go-log-timeline/internal/presentation/layout"
	"github.com/penwyp/go-log-timeline/internal/presentation/scene"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// Orchestrator coordinates all components for the interactive view
type Orchestrator struct {
	config *ViewConfig

	// Core components
	loader       *Loader
	dispatcher   *Dispatcher
	stateManager *StateManager

	// UI components
	display  DisplayController
	keyboard InputHandler
	sizer    func() *layout.Sizer
	canvas   *display.Canvas

	// Monitoring
	watcher FileMonitor
}

// NewOrchestrator creates a new Orchestrator instance drawing on stdout
func NewOrchestrator(config *ViewConfig, src source.Source) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	termDisplay := display.NewTerminalDisplay(display.Config{
		Mouse:     config.Mouse,
		Glyphs:    config.Glyphs,
		FontColor: config.Layout.FontColor,
	})
	return newOrchestrator(config, src, termDisplay, layout.DetectSizer), nil
}

func newOrchestrator(config *ViewConfig, src source.Source, disp DisplayController, sizer func() *layout.Sizer) *Orchestrator {
	return &Orchestrator{
		config: config,
		loader: NewLoader(src),
		dispatcher: NewDispatcher(
			timeline.NewTimelineBuilder(config.Palette),
			scene.NewRenderer(config.Layout),
		),
		stateManager: NewStateManager(),
		display:      disp,
		sizer:        sizer,
	}
}

// Dispatcher returns the dispatcher owning the timeline and selection
func (o *Orchestrator) Dispatcher() *Dispatcher {
	return o.dispatcher
}

// Run starts the orchestrator main loop
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting timeline view", util.F("source", o.loader.Source().Name()))

	defer o.Close()

	// Phase 1: Initialize keyboard
	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	o.keyboard = keyboard
	defer o.keyboard.Close()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	o.stateManager.SetLoadingState(true)
	o.stateManager.SetStatus("Loading " + o.loader.Source().Name() + "...")
	o.updateDisplay()

	// Phase 2: Initial load
	if err := o.Load(ctx); err != nil {
		return err
	}

	// Phase 3: Start file monitoring
	if o.config.Watch {
		if err := o.startWatcher(); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	// Phase 4: Main event loop
	resizeTicker := time.NewTicker(time.Second)
	defer resizeTicker.Stop()

	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down timeline view")
			return nil

		case <-resizeTicker.C:
			o.updateDisplay()

		case event := <-o.watcherEvents():
			if !o.stateManager.GetInteractionState().IsPaused {
				o.handleFileChange(ctx, event)
				o.updateDisplay()
			}

		case keyEvent := <-o.keyboard.Events():
			if o.handleKeyboard(ctx, keyEvent) {
				return nil
			}
			o.updateDisplay()
		}
	}
}

// watcherEvents returns a nil channel when watching is off, which never fires
func (o *Orchestrator) watcherEvents() <-chan model.FileEvent {
	if o.watcher == nil {
		return nil
	}
	return o.watcher.Events()
}

// Load reads the source and replaces the timeline. The first load surfaces
// its error; later reloads go through reload.
func (o *Orchestrator) Load(ctx context.Context) error {
	events, err := o.loader.Load(ctx)
	o.stateManager.SetLoadingState(false)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", o.loader.Source().Name(), err)
	}
	o.apply(events)
	o.stateManager.SetStatus(fmt.Sprintf("Loaded %d events", len(events)))
	return nil
}

// reload rereads the source. On failure the previous timeline and selection
// stay on screen.
func (o *Orchestrator) reload(ctx context.Context) {
	o.loader.Invalidate()
	events, err := o.loader.Load(ctx)
	if err != nil {
		util.LogError("Failed to reload source", util.F("error", err))
		o.stateManager.SetStatus("Reload failed: " + err.Error())
		return
	}
	o.apply(events)
	o.stateManager.SetStatus(fmt.Sprintf("Reloaded %d events", len(events)))
}

func (o *Orchestrator) apply(events []model.Event) {
	o.dispatcher.Update(events)
	o.stateManager.ClampCursor(len(o.dispatcher.Scene().Markers))
	o.stateManager.SetLastReload(time.Now().Unix())
}

// currentCanvas projects the current scene for the terminal size
func (o *Orchestrator) currentCanvas() *display.Canvas {
	o.canvas = o.display.NewCanvasFor(o.dispatcher.Scene(), o.sizer())
	return o.canvas
}

// updateDisplay updates the terminal display
func (o *Orchestrator) updateDisplay() {
	o.display.Render(display.Frame{
		Source: o.loader.Source().Name(),
		Canvas: o.currentCanvas(),
		Detail: o.dispatcher.DetailLines(),
		State:  o.stateManager.GetInteractionState(),
	})
}

// selectMarker focuses and selects a marker
func (o *Orchestrator) selectMarker(index int) {
	if !o.dispatcher.ClickMarker(index) {
		return
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.Cursor = index
		s.StatusMessage = ""
	})
}

// moveCursor steps the focused marker along the time axis
func (o *Orchestrator) moveCursor(delta int) {
	markers := len(o.dispatcher.Scene().Markers)
	if markers == 0 {
		return
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		switch {
		case s.Cursor < 0 && delta > 0:
			s.Cursor = 0
		case s.Cursor < 0:
			s.Cursor = markers - 1
		default:
			s.Cursor = min(max(s.Cursor+delta, 0), markers-1)
		}
	})
}

// moveLane jumps the focus to the closest marker in the lane above (dir < 0)
// or below
func (o *Orchestrator) moveLane(dir int) {
	cursor := o.stateManager.GetInteractionState().Cursor
	if cursor < 0 || o.canvas == nil {
		return
	}
	if next, ok := o.canvas.Neighbor(cursor, dir); ok {
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.Cursor = next
		})
	}
}

// handleClick hit-tests a mouse click against the drawn canvas
func (o *Orchestrator) handleClick(termRow, termCol int) {
	if o.canvas == nil {
		return
	}
	row, col := o.display.CanvasOrigin(termRow, termCol)
	if index, ok := o.canvas.HitTest(row, col); ok {
		o.selectMarker(index)
	}
}

// handleKeyboard handles keyboard and mouse events. It returns true when
// the user asked to quit.
func (o *Orchestrator) handleKeyboard(ctx context.Context, event interaction.KeyEvent) bool {
	state := o.stateManager.GetInteractionState()

	// If help is shown, escape closes it instead of quitting
	if event.Type == interaction.KeyEscape && state.ShowHelp {
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.ShowHelp = false
		})
		return false
	}
	if event.IsQuit() {
		return true
	}

	switch event.Type {
	case interaction.KeyLeft:
		o.moveCursor(-1)
	case interaction.KeyRight:
		o.moveCursor(1)
	case interaction.KeyUp:
		o.moveLane(-1)
	case interaction.KeyDown:
		o.moveLane(1)
	case interaction.KeyEnter:
		if state.Cursor >= 0 {
			o.selectMarker(state.Cursor)
		}
	case interaction.KeyMouseClick:
		o.handleClick(event.Row, event.Col)
	case interaction.KeyChar:
		switch event.Key {
		case ' ':
			if state.Cursor >= 0 {
				o.selectMarker(state.Cursor)
			}
		case 'r', 'R':
			o.reload(ctx)
		case 'p', 'P':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.IsPaused = !s.IsPaused
			})
		case 'h', 'H':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = !s.ShowHelp
			})
		}
	}

	return false
}

// startWatcher initializes the file watcher for file sources
func (o *Orchestrator) startWatcher() error {
	paths := o.loader.WatchPaths()
	if len(paths) == 0 {
		return nil
	}
	watcher, err := monitoring.NewFileWatcher(paths)
	if err != nil {
		return err
	}
	o.watcher = watcher
	return nil
}

// handleFileChange handles file change events
func (o *Orchestrator) handleFileChange(ctx context.Context, event model.FileEvent) {
	util.LogDebug("Source changed", util.F("path", event.Path), util.F("op", event.Operation))
	o.reload(ctx)
}

// Close cleans up all resources
func (o *Orchestrator) Close() error {
	if o.watcher != nil {
		if err := o.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close file watcher: %w", err)
		}
	}
	return nil
}
