package sketch

import (
	"math"
	"testing"

	"github.com/genesketch/genesketch/track"
	"github.com/grailbio/testutil/expect"
)

type line struct {
	x1, y1, x2, y2 float64
}

type label struct {
	x, y float64
	text string
}

// fakeGraphics records drawing calls for inspection.
type fakeGraphics struct {
	width, margins float64
	lines          []line
	labels         []label
}

func (g *fakeGraphics) ImageWidth() float64 { return g.width }
func (g *fakeGraphics) XMargins() float64   { return g.margins }
func (g *fakeGraphics) DrawLine(x1, y1, x2, y2 float64, c Color, width float64) {
	g.lines = append(g.lines, line{x1, y1, x2, y2})
}
func (g *fakeGraphics) DrawTextCentered(x, y float64, text string) {
	g.labels = append(g.labels, label{x, y, text})
}

func TestMarkerX(t *testing.T) {
	g := &fakeGraphics{width: 700, margins: 10}
	rng := Range{Start: 1000, End: 1999}
	// Drawing area spans 680 pixels over a 1000 base window.
	expect.EQ(t, markerX(g, rng, 1000), 10.0)
	expect.EQ(t, markerX(g, rng, 1500), 10.0+0.5*680)
	// The far edge is just short of the right margin since the window
	// is inclusive on both ends.
	expect.EQ(t, markerX(g, rng, 1999), 10.0+999.0/1000*680)
}

func TestInsertionTrackRender(t *testing.T) {
	g := &fakeGraphics{width: 700, margins: 10}
	tr := InsertionTrack{
		Lane:  track.Lane{{Name: "mir-17", Pos: 1500}},
		Style: DefaultStyle,
	}
	tr.Render(g, 40, Range{Start: 1000, End: 1999})

	// One triangle (three lines) and one label per marker.
	expect.EQ(t, len(g.lines), 3)
	expect.EQ(t, len(g.labels), 1)

	x := markerX(g, Range{Start: 1000, End: 1999}, 1500)
	side := DefaultStyle.SideLength
	height := side * math.Sqrt(3) / 2
	expect.EQ(t, g.lines[0], line{x - side/2, 40 + height, x, 40})
	expect.EQ(t, g.lines[1], line{x, 40, x + side/2, 40 + height})
	expect.EQ(t, g.lines[2], line{x - side/2, 40 + height, x + side/2, 40 + height})
	expect.EQ(t, g.labels[0], label{x, 40 + height + labelOffset, "mir-17"})
}

func TestRenderLanes(t *testing.T) {
	g := &fakeGraphics{width: 700, margins: 10}
	lanes := track.LaneSet{
		track.Lane{{Name: "a", Pos: 1100}, {Name: "b", Pos: 1800}},
		track.Lane{{Name: "c", Pos: 1200}},
	}
	consumed := RenderLanes(g, lanes, DefaultStyle, 0, Range{Start: 1000, End: 1999})

	expect.EQ(t, len(g.lines), 9)
	expect.EQ(t, len(g.labels), 3)
	perLane := DefaultStyle.TrackHeight + labelOffset
	expect.EQ(t, consumed, 2*perLane)
	expect.EQ(t, LanesHeight(lanes, DefaultStyle), consumed)
	// The second lane's glyphs start one track lower than the first's.
	expect.EQ(t, g.lines[6].y2-g.lines[0].y2, perLane)
}
