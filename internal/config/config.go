package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

var (
	hexColor   = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	namedColor = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or the default config file when path is empty.
// A missing default file yields the defaults.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	if _, err := os.Stat(DefaultPath()); err == nil {
		return Load(ctx, DefaultPath())
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if len(cfg.Palette) == 0 {
		return errors.New("palette: at least one color is required")
	}
	for i, color := range cfg.Palette {
		if err := validateColor(color); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}

	if cfg.Layout.Height <= 0 {
		return errors.New("layout.height: must be positive")
	}
	if cfg.Layout.MarkerSize <= 0 {
		return errors.New("layout.marker_size: must be positive")
	}
	for name, color := range map[string]string{
		"layout.font_color":        cfg.Layout.FontColor,
		"layout.paper_bgcolor":     cfg.Layout.PaperBackground,
		"layout.marker_line_color": cfg.Layout.MarkerLineColor,
	} {
		if color == "" {
			continue
		}
		if err := validateColor(color); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	glyphs := map[string]string{
		"display.glyphs.marker":    cfg.Display.Glyphs.Marker,
		"display.glyphs.cluster":   cfg.Display.Glyphs.Cluster,
		"display.glyphs.crosshair": cfg.Display.Glyphs.Crosshair,
	}
	for name, glyph := range glyphs {
		if runewidth.StringWidth(glyph) != 1 {
			return fmt.Errorf("%s: %q must be exactly one column wide", name, glyph)
		}
	}

	if tail := cfg.Docker.Tail; tail != "" && tail != "all" {
		if n, err := strconv.Atoi(tail); err != nil || n < 0 {
			return fmt.Errorf("docker.tail: %q must be \"all\" or a non-negative number", tail)
		}
	}
	if cfg.Docker.Timeout < 0 {
		return errors.New("docker.timeout: must not be negative")
	}

	switch cfg.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: %q must be text or json", cfg.Log.Format)
	}

	return nil
}

func validateColor(color string) error {
	if hexColor.MatchString(color) || namedColor.MatchString(color) {
		return nil
	}
	return fmt.Errorf("invalid color %q", color)
}
