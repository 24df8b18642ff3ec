package model

import "time"

// Scene is the declarative description of what to draw. It carries no
// drawing-surface specifics beyond layout constants.
type Scene struct {
	Markers   []Marker   `json:"markers"`
	YAxis     LaneAxis   `json:"yaxis"`
	XAxis     TimeAxis   `json:"xaxis"`
	Crosshair *Crosshair `json:"crosshair,omitempty"`
	Layout    Layout     `json:"layout"`
}

// IsEmpty reports whether the scene has nothing to draw.
func (s Scene) IsEmpty() bool {
	return len(s.Markers) == 0
}

// Marker is one event point.
type Marker struct {
	Index   int       `json:"index"`
	X       time.Time `json:"x"`
	Y       int       `json:"y"`
	Color   string    `json:"color"`
	Text    string    `json:"text"`
	Payload Payload   `json:"payload"`
}

// Tick is one labelled position on an axis.
type Tick struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// LaneAxis is the vertical axis: one tick per lane.
type LaneAxis struct {
	Ticks     []Tick `json:"ticks"`
	GridColor string `json:"grid_color,omitempty"`
}

// TimeAxis is the horizontal axis domain.
type TimeAxis struct {
	Format    string    `json:"format,omitempty"` // Go layout for tick labels
	Min       time.Time `json:"min"`
	Max       time.Time `json:"max"`
	GridColor string    `json:"grid_color,omitempty"`
}

// Crosshair is the vertical line marking the selected time.
type Crosshair struct {
	X     time.Time `json:"x"`
	Y0    float64   `json:"y0"`
	Y1    float64   `json:"y1"`
	Color string    `json:"color"`
	Dash  string    `json:"dash"`
	Width int       `json:"width"`
}

// Layout holds presentation constants handed to the drawing surface.
type Layout struct {
	Height          int    `json:"height" yaml:"height"`
	Margin          int    `json:"margin" yaml:"margin"`
	PaperBackground string `json:"paper_bgcolor" yaml:"paper_bgcolor"`
	PlotBackground  string `json:"plot_bgcolor" yaml:"plot_bgcolor"`
	FontFamily      string `json:"font_family" yaml:"font_family"`
	FontColor       string `json:"font_color" yaml:"font_color"`
	FontSize        int    `json:"font_size" yaml:"font_size"`
	MarkerSize      int    `json:"marker_size" yaml:"marker_size"`
	MarkerSymbol    string `json:"marker_symbol" yaml:"marker_symbol"`
	MarkerLineColor string `json:"marker_line_color" yaml:"marker_line_color"`
	MarkerLineWidth int    `json:"marker_line_width" yaml:"marker_line_width"`
	GridColor       string `json:"grid_color" yaml:"grid_color"`
}
