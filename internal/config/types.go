package config

import (
	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/data/source"
	"github.com/penwyp/go-log-timeline/internal/presentation/display"
)

// Config is the contents of the YAML configuration file.
type Config struct {
	Palette []string            `yaml:"palette"`
	Layout  model.Layout        `yaml:"layout"`
	Display DisplayConfig       `yaml:"display"`
	Docker  source.DockerConfig `yaml:"docker"`
	Watch   bool                `yaml:"watch"`
	Log     LogConfig           `yaml:"log"`
}

// DisplayConfig controls the interactive terminal view.
type DisplayConfig struct {
	Glyphs display.Glyphs `yaml:"glyphs"`
	Mouse  bool           `yaml:"mouse"`
}

// LogConfig controls the application log.
type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}
