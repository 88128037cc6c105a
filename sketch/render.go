package sketch

import (
	"math"

	"github.com/genesketch/genesketch/track"
)

// Range is the coordinate window of a diagram, inclusive on both ends,
// matching the GenomeTools range model.
type Range struct {
	Start, End uint
}

// Graphics is the drawing surface the track renderer draws on. It is
// the minimal subset of the GenomeTools graphics API the renderer
// needs; implementations pick the backend (SVG, cairo, ...).
type Graphics interface {
	// ImageWidth returns the total image width in pixels.
	ImageWidth() float64
	// XMargins returns the horizontal margin kept on each side of the
	// drawing area, in pixels.
	XMargins() float64
	// DrawLine draws a straight line from (x1, y1) to (x2, y2) with the
	// given stroke color and width.
	DrawLine(x1, y1, x2, y2 float64, c Color, width float64)
	// DrawTextCentered draws text horizontally centered on x with its
	// baseline at y.
	DrawTextCentered(x, y float64, text string)
}

// labelOffset is the distance from the glyph base to the label
// baseline, in pixels.
const labelOffset = 13

// An InsertionTrack renders one lane of markers as triangle glyphs
// with the marker name centered underneath.
type InsertionTrack struct {
	Lane  track.Lane
	Style Style
}

// Height returns the vertical space the track occupies, including the
// label row.
func (t *InsertionTrack) Height() float64 {
	return t.Style.TrackHeight + labelOffset
}

// markerX projects pos onto the drawing area for the coordinate window
// rng.
func markerX(g Graphics, rng Range, pos int) float64 {
	margins := g.XMargins()
	span := float64(rng.End) - float64(rng.Start) + 1
	return margins + (float64(pos)-float64(rng.Start))/span*(g.ImageWidth()-2*margins)
}

// Render draws the track onto g at vertical offset ypos, projecting
// marker positions into the coordinate window rng.
func (t *InsertionTrack) Render(g Graphics, ypos float64, rng Range) {
	side := t.Style.SideLength
	height := side * math.Sqrt(3) / 2
	for _, m := range t.Lane {
		x := markerX(g, rng, m.Pos)
		g.DrawLine(x-side/2, ypos+height, x, ypos, t.Style.Color, 1)
		g.DrawLine(x, ypos, x+side/2, ypos+height, t.Style.Color, 1)
		g.DrawLine(x-side/2, ypos+height, x+side/2, ypos+height, t.Style.Color, 1)
		g.DrawTextCentered(x, ypos+height+labelOffset, m.Name)
	}
}

// LanesHeight returns the total height RenderLanes will consume for
// lanes under style.
func LanesHeight(lanes track.LaneSet, style Style) float64 {
	t := InsertionTrack{Style: style}
	return float64(len(lanes)) * t.Height()
}

// RenderLanes stacks one InsertionTrack per lane, starting at ypos,
// and returns the total height consumed.
func RenderLanes(g Graphics, lanes track.LaneSet, style Style, ypos float64, rng Range) float64 {
	var consumed float64
	for _, lane := range lanes {
		t := InsertionTrack{Lane: lane, Style: style}
		t.Render(g, ypos+consumed, rng)
		consumed += t.Height()
	}
	return consumed
}
