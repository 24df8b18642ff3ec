package display

import (
	"math"
	"strings"
	"time"

	"github.com/penwyp/go-log-timeline/internal/core/model"
	"github.com/penwyp/go-log-timeline/internal/presentation/layout"
	"github.com/penwyp/go-log-timeline/internal/util"
)

// Glyphs are the characters used to draw a scene.
type Glyphs struct {
	Marker    string `yaml:"marker"`
	Cluster   string `yaml:"cluster"`
	Crosshair string `yaml:"crosshair"`
}

// DefaultGlyphs returns the glyph set used when none is configured.
func DefaultGlyphs() Glyphs {
	return Glyphs{Marker: "●", Cluster: "◉", Crosshair: "┊"}
}

type cell struct {
	row, col int
}

// Canvas is a scene projected onto a character grid: one row per lane with
// the highest lane on top, followed by the time axis and its labels.
type Canvas struct {
	scene     model.Scene
	glyphs    Glyphs
	labels    int // lane label width
	plotWidth int
	lanes     int

	min, span time.Duration
	positions []cell        // per marker index
	hits      map[cell][]int // marker indexes per cell, in draw order
	crossCol  int
	hasCross  bool
}

// NewCanvas projects sc onto a grid sized by sizer.
func NewCanvas(sc model.Scene, sizer *layout.Sizer, glyphs Glyphs) *Canvas {
	labels := make([]string, len(sc.YAxis.Ticks))
	for i, tick := range sc.YAxis.Ticks {
		labels[i] = tick.Label
	}

	c := &Canvas{
		scene:  sc,
		glyphs: glyphs,
		lanes:  len(sc.YAxis.Ticks),
		hits:   make(map[cell][]int),
	}
	c.labels = sizer.LabelWidth(labels)
	c.plotWidth = sizer.PlotWidth(c.Gutter())

	if sc.IsEmpty() {
		return c
	}

	c.min = model.ClockOffset(sc.XAxis.Min)
	c.span = model.ClockOffset(sc.XAxis.Max) - c.min

	c.positions = make([]cell, len(sc.Markers))
	for i, m := range sc.Markers {
		pos := cell{row: c.laneRow(m.Y), col: c.column(model.ClockOffset(m.X))}
		c.positions[i] = pos
		c.hits[pos] = append(c.hits[pos], i)
	}

	if sc.Crosshair != nil {
		off := model.ClockOffset(sc.Crosshair.X)
		// Outside the axis domain the line is clipped.
		if off >= c.min && off <= c.min+c.span {
			c.crossCol = c.column(off)
			c.hasCross = true
		}
	}
	return c
}

// Gutter is the number of columns before the first plot column.
func (c *Canvas) Gutter() int {
	return c.labels + 2
}

// PlotWidth is the number of plot columns.
func (c *Canvas) PlotWidth() int {
	return c.plotWidth
}

// Height is the number of lines produced by Lines.
func (c *Canvas) Height() int {
	if c.scene.IsEmpty() {
		return 1
	}
	return c.lanes + 2
}

// Scene returns the projected scene.
func (c *Canvas) Scene() model.Scene {
	return c.scene
}

func (c *Canvas) laneRow(lane int) int {
	return c.lanes - lane
}

func (c *Canvas) column(off time.Duration) int {
	if c.span <= 0 {
		return c.plotWidth / 2
	}
	frac := float64(off-c.min) / float64(c.span)
	col := int(math.Round(frac * float64(c.plotWidth-1)))
	if col < 0 {
		col = 0
	}
	if col >= c.plotWidth {
		col = c.plotWidth - 1
	}
	return col
}

// MarkerCell returns the grid position of a marker relative to the canvas.
func (c *Canvas) MarkerCell(index int) (row, col int, ok bool) {
	if index < 0 || index >= len(c.positions) {
		return 0, 0, false
	}
	p := c.positions[index]
	return p.row, p.col + c.Gutter(), true
}

// CrosshairColumn returns the canvas column of the crosshair when it is
// inside the plotted time range.
func (c *Canvas) CrosshairColumn() (int, bool) {
	if !c.hasCross {
		return 0, false
	}
	return c.crossCol + c.Gutter(), true
}

// HitTest resolves a canvas position to the marker drawn there. A click one
// column off a marker still hits it; the topmost marker of a cluster wins.
func (c *Canvas) HitTest(row, col int) (int, bool) {
	if row < 0 || row >= c.lanes {
		return 0, false
	}
	x := col - c.Gutter()
	for _, dx := range []int{0, -1, 1} {
		if idx := c.hits[cell{row: row, col: x + dx}]; len(idx) > 0 {
			return idx[len(idx)-1], true
		}
	}
	return 0, false
}

// Neighbor returns the marker in the lane above (dir < 0) or below (dir > 0)
// index that is closest in time.
func (c *Canvas) Neighbor(index, dir int) (int, bool) {
	if index < 0 || index >= len(c.positions) || dir == 0 {
		return index, false
	}
	from := c.positions[index]
	step := 1
	if dir < 0 {
		step = -1
	}
	for row := from.row + step; row >= 0 && row < c.lanes; row += step {
		best, bestDist := -1, math.MaxInt
		for i, p := range c.positions {
			if p.row != row {
				continue
			}
			d := p.col - from.col
			if d < 0 {
				d = -d
			}
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			return best, true
		}
	}
	return index, false
}

// Lines draws the canvas. cursor is the focused marker index or -1. paint
// decorates single cells and may be nil for plain text.
func (c *Canvas) Lines(cursor int, paint Painter) []string {
	if paint == nil {
		paint = plain
	}
	if c.scene.IsEmpty() {
		return []string{paint(util.PadLeft("", c.Gutter())+"(no events)", "", StyleMuted)}
	}

	lines := make([]string, 0, c.Height())
	for row := 0; row < c.lanes; row++ {
		tick := c.scene.YAxis.Ticks[c.lanes-1-row]
		var b strings.Builder
		b.WriteString(paint(util.PadLeft(util.Truncate(tick.Label, c.labels), c.labels), "", StyleLabel))
		b.WriteString(" │")
		for col := 0; col < c.plotWidth; col++ {
			b.WriteString(c.drawCell(row, col, cursor, paint))
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, c.axisLine(paint), c.axisLabels(paint))
	return lines
}

func (c *Canvas) drawCell(row, col, cursor int, paint Painter) string {
	idx := c.hits[cell{row: row, col: col}]
	switch {
	case len(idx) > 0:
		top := idx[len(idx)-1]
		glyph := c.glyphs.Marker
		if len(idx) > 1 {
			glyph = c.glyphs.Cluster
		}
		style := StyleMarker
		for _, i := range idx {
			if i == cursor {
				top = i
				style = StyleFocused
			}
		}
		return paint(glyph, c.scene.Markers[top].Color, style)
	case c.hasCross && col == c.crossCol:
		return paint(c.glyphs.Crosshair, c.scene.Crosshair.Color, StyleCrosshair)
	default:
		return " "
	}
}

// ticks returns evenly spaced plot columns that get a time label.
func (c *Canvas) ticks() []int {
	if c.span <= 0 {
		return []int{c.plotWidth / 2}
	}
	count := c.plotWidth / 16
	if count < 1 {
		count = 1
	}
	cols := make([]int, 0, count+1)
	for i := 0; i <= count; i++ {
		cols = append(cols, i*(c.plotWidth-1)/count)
	}
	return cols
}

func (c *Canvas) axisLine(paint Painter) string {
	axis := []rune(strings.Repeat("─", c.plotWidth))
	for _, col := range c.ticks() {
		axis[col] = '┬'
	}
	return paint(strings.Repeat(" ", c.labels+1)+"└"+string(axis), "", StyleMuted)
}

func (c *Canvas) axisLabels(paint Painter) string {
	format := c.scene.XAxis.Format
	if format == "" {
		format = util.ClockLayout
	}
	base := c.scene.XAxis.Min

	row := []rune(strings.Repeat(" ", c.plotWidth))
	next := 0
	ticks := c.ticks()
	for i, col := range ticks {
		var at time.Time
		if c.span > 0 {
			at = base.Add(time.Duration(float64(c.span) * float64(col) / float64(c.plotWidth-1)))
		} else {
			at = base
		}
		label := []rune(at.Format(format))
		start := col
		// The last label is right-aligned to its tick.
		if i == len(ticks)-1 && len(ticks) > 1 {
			start = col - len(label) + 1
		}
		if start < next || start+len(label) > c.plotWidth {
			continue
		}
		copy(row[start:], label)
		next = start + len(label) + 1
	}
	return paint(strings.Repeat(" ", c.Gutter())+string(row), "", StyleMuted)
}
