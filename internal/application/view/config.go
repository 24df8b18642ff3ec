package view

import (
	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/core/timeline"
	"github.com/penwyp/go-log-timeline/internal/presentation/display"
	"github.com/penwyp/go-log-timeline/internal/presentation/scene"
)

// ViewConfig contains configuration for the interactive view
type ViewConfig struct {
	Palette []string
	Layout  model.Layout
	Glyphs  display.Glyphs
	Mouse   bool
	Watch   bool
}

// Validate fills unset fields with defaults
func (c *ViewConfig) Validate() error {
	if len(c.Palette) == 0 {
		c.Palette = timeline.DefaultPalette
	}
	if c.Layout == (model.Layout{}) {
		c.Layout = scene.DefaultLayout()
	}
	if c.Glyphs == (display.Glyphs{}) {
		c.Glyphs = display.DefaultGlyphs()
	}
	return nil
}
