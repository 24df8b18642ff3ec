package view

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/data/source"
	"github.com/penwyp/go-log-timeline/internal/presentation/detail"
	"github.com/penwyp/go-log-timeline/internal/presentation/display"
	"github.com/penwyp/go-log-timeline/internal/presentation/interaction"
	"github.com/penwyp/go-log-timeline/internal/presentation/layout"
)

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Load(context.Context) (string, error) {
	return "", errors.New("boom")
}

func newTestOrchestrator(t *testing.T, src source.Source) (*Orchestrator, *bytes.Buffer) {
	t.Helper()
	cfg := &ViewConfig{}
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	disp := display.NewTerminalDisplay(display.Config{Out: &out})
	sizer := func() *layout.Sizer { return layout.NewSizer(40, 20) }
	return newOrchestrator(cfg, src, disp, sizer), &out
}

func writeLog(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func key(k rune) interaction.KeyEvent {
	return interaction.KeyEvent{Key: k, Type: interaction.KeyChar}
}

func TestOrchestrator_LoadSample(t *testing.T) {
	o, out := newTestOrchestrator(t, source.NewTextSource("sample", source.Sample))

	require.NoError(t, o.Load(context.Background()))
	o.updateDisplay()

	assert.Len(t, o.Dispatcher().Scene().Markers, 2)
	assert.Equal(t, "Loaded 2 events", o.stateManager.GetInteractionState().StatusMessage)
	assert.Contains(t, out.String(), "go-log-timeline  sample  2 events, 2 lanes")
	assert.Contains(t, out.String(), detail.Placeholder)
}

func TestOrchestrator_LoadError(t *testing.T) {
	o, _ := newTestOrchestrator(t, failingSource{})

	err := o.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.True(t, o.Dispatcher().Timeline().IsEmpty())
}

func TestOrchestrator_KeyboardSelection(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t, source.NewTextSource("sample", source.Sample))
	require.NoError(t, o.Load(ctx))
	o.updateDisplay()

	assert.False(t, o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyRight}))
	assert.Equal(t, 0, o.stateManager.GetInteractionState().Cursor)

	assert.False(t, o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyRight}))
	assert.False(t, o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyRight}))
	assert.Equal(t, 1, o.stateManager.GetInteractionState().Cursor)

	assert.False(t, o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyEnter}))
	assert.Equal(t, "World", o.Dispatcher().Selection().Payload.Object)

	assert.False(t, o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyLeft}))
	assert.False(t, o.handleKeyboard(ctx, key(' ')))
	assert.Equal(t, "Hello", o.Dispatcher().Selection().Payload.Object)
}

func TestOrchestrator_LaneNavigation(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t, source.NewTextSource("sample", source.Sample))
	require.NoError(t, o.Load(ctx))
	o.updateDisplay()

	// Hello is the lower lane, World the upper one.
	o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyRight})
	o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyUp})
	assert.Equal(t, 1, o.stateManager.GetInteractionState().Cursor)

	o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyDown})
	assert.Equal(t, 0, o.stateManager.GetInteractionState().Cursor)
}

func TestOrchestrator_MouseClick(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t, source.NewTextSource("sample", source.Sample))
	require.NoError(t, o.Load(ctx))
	o.updateDisplay()

	// Hello sits on canvas row 1 at the first plot column; the canvas starts
	// on terminal row 3.
	o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyMouseClick, Row: 4, Col: 8})
	state := o.Dispatcher().Selection()
	assert.True(t, state.IsSelected())
	assert.Equal(t, "Hello", state.Payload.Object)
	assert.Equal(t, 0, o.stateManager.GetInteractionState().Cursor)

	// Clicking empty space changes nothing.
	o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyMouseClick, Row: 3, Col: 12})
	assert.Equal(t, "Hello", o.Dispatcher().Selection().Payload.Object)
}

func TestOrchestrator_HelpAndQuit(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t, source.NewTextSource("sample", source.Sample))

	assert.False(t, o.handleKeyboard(ctx, key('h')))
	assert.True(t, o.stateManager.GetInteractionState().ShowHelp)

	assert.False(t, o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyEscape}))
	assert.False(t, o.stateManager.GetInteractionState().ShowHelp)

	assert.True(t, o.handleKeyboard(ctx, interaction.KeyEvent{Type: interaction.KeyEscape}))
	assert.True(t, o.handleKeyboard(ctx, key('q')))
	assert.True(t, o.handleKeyboard(ctx, key(3)))
}

func TestOrchestrator_Pause(t *testing.T) {
	ctx := context.Background()
	o, out := newTestOrchestrator(t, source.NewTextSource("sample", source.Sample))
	require.NoError(t, o.Load(ctx))

	o.handleKeyboard(ctx, key('p'))
	assert.True(t, o.stateManager.GetInteractionState().IsPaused)
	o.updateDisplay()
	assert.Contains(t, out.String(), "[watch paused]")
}

func TestOrchestrator_ReloadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.log")
	writeLog(t, path, source.Sample)

	o, _ := newTestOrchestrator(t, source.NewFileSource(path))
	require.NoError(t, o.Load(ctx))
	assert.Equal(t, []string{path}, o.loader.WatchPaths())
	require.True(t, o.Dispatcher().ClickMarker(0))

	t.Run("edit keeps the selected time", func(t *testing.T) {
		writeLog(t, path, "[20:58:12.174] <<World>> World, Hello!")
		o.handleFileChange(ctx, model.FileEvent{Path: path, Operation: "WRITE"})

		assert.Len(t, o.Dispatcher().Timeline().Events, 1)
		state := o.Dispatcher().Selection()
		assert.True(t, state.IsSelected())
		assert.False(t, state.EventPresent)
		assert.NotNil(t, o.Dispatcher().Scene().Crosshair)
		assert.Equal(t, detail.NoEvent, o.Dispatcher().Detail())
		assert.Equal(t, "Reloaded 1 events", o.stateManager.GetInteractionState().StatusMessage)
	})

	t.Run("failed reload keeps the previous timeline", func(t *testing.T) {
		require.NoError(t, os.Remove(path))
		o.handleKeyboard(ctx, key('r'))

		assert.Len(t, o.Dispatcher().Timeline().Events, 1)
		assert.True(t, o.Dispatcher().Selection().IsSelected())
		assert.Contains(t, o.stateManager.GetInteractionState().StatusMessage, "Reload failed")
	})
}

func TestOrchestrator_CursorClampedOnShrink(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.log")
	writeLog(t, path, source.Sample)

	o, _ := newTestOrchestrator(t, source.NewFileSource(path))
	require.NoError(t, o.Load(ctx))
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) { s.Cursor = 1 })

	writeLog(t, path, "[01:00:00] <<A>> only")
	o.reload(ctx)
	assert.Equal(t, 0, o.stateManager.GetInteractionState().Cursor)

	writeLog(t, path, "")
	o.reload(ctx)
	assert.Equal(t, -1, o.stateManager.GetInteractionState().Cursor)
}

func TestOrchestrator_StartWatcherSkipsNonFileSources(t *testing.T) {
	o, _ := newTestOrchestrator(t, source.NewTextSource("sample", source.Sample))
	require.NoError(t, o.startWatcher())
	assert.Nil(t, o.watcher)
	assert.Nil(t, o.watcherEvents())
	assert.NoError(t, o.Close())
}

func TestOrchestrator_StartWatcherForFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	writeLog(t, path, source.Sample)

	o, _ := newTestOrchestrator(t, source.NewFileSource(path))
	require.NoError(t, o.startWatcher())
	assert.NotNil(t, o.watcherEvents())
	assert.NoError(t, o.Close())
}
