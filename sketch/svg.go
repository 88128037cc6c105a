package sketch

import (
	"fmt"
	"io"
	"strings"
)

// SVG is a Graphics implementation that emits SVG text to an
// io.Writer. Construct with NewSVG, draw, then Close to write the
// closing tag and collect the first write error, if any.
type SVG struct {
	w       io.Writer
	width   float64
	height  float64
	margins float64
	err     error
}

// NewSVG writes the opening tag for an image of the given size and
// returns a Graphics drawing into it. margins is the horizontal margin
// kept on each side of the drawing area.
func NewSVG(w io.Writer, width, height, margins float64) *SVG {
	s := &SVG{w: w, width: width, height: height, margins: margins}
	s.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\">\n", width, height)
	return s
}

func (s *SVG) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// ImageWidth implements Graphics.
func (s *SVG) ImageWidth() float64 { return s.width }

// XMargins implements Graphics.
func (s *SVG) XMargins() float64 { return s.margins }

// DrawLine implements Graphics.
func (s *SVG) DrawLine(x1, y1, x2, y2 float64, c Color, width float64) {
	s.printf("<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-opacity=\"%g\" stroke-width=\"%g\"/>\n",
		x1, y1, x2, y2, c.svg(), c.Alpha, width)
}

// DrawTextCentered implements Graphics.
func (s *SVG) DrawTextCentered(x, y float64, text string) {
	s.printf("<text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-size=\"10\">%s</text>\n",
		x, y, xmlEscaper.Replace(text))
}

// Close writes the closing tag and reports the first error hit while
// drawing.
func (s *SVG) Close() error {
	s.printf("</svg>\n")
	return s.err
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// svg renders the color channels as an SVG rgb() triple.
func (c Color) svg() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c.Red), channel(c.Green), channel(c.Blue))
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v*255 + 0.5)
}
