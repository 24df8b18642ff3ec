package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-log-timeline/internal/core/timeline"
	"github.com/penwyp/go-log-timeline/internal/data/source"
	"github.com/penwyp/go-log-timeline/internal/presentation/display"
	"github.com/penwyp/go-log-timeline/internal/presentation/scene"
)

// Environment variable names.
const (
	EnvPalette    = "GO_LOG_TIMELINE_PALETTE"
	EnvDockerHost = "GO_LOG_TIMELINE_DOCKER_HOST"
)

// AppDir is the per-user directory holding the config file and logs.
const AppDir = ".go-log-timeline"

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	palette := make([]string, len(timeline.DefaultPalette))
	copy(palette, timeline.DefaultPalette)

	return &Config{
		Palette: palette,
		Layout:  scene.DefaultLayout(),
		Display: DisplayConfig{
			Glyphs: display.DefaultGlyphs(),
			Mouse:  true,
		},
		Docker: source.DefaultDockerConfig(),
		Watch:  true,
		Log: LogConfig{
			Level:  "info",
			File:   filepath.Join(homeDir(), AppDir, "logs", "app.log"),
			Format: "text",
		},
	}
}

// DefaultPath is where the config file is looked up when none is given.
func DefaultPath() string {
	return filepath.Join(homeDir(), AppDir, "config.yaml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if palette := os.Getenv(EnvPalette); palette != "" {
		var colors []string
		for _, color := range strings.Split(palette, ",") {
			if color = strings.TrimSpace(color); color != "" {
				colors = append(colors, color)
			}
		}
		c.Palette = colors
	}

	if host := os.Getenv(EnvDockerHost); host != "" {
		c.Docker.Host = host
	}
}
