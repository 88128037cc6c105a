package sketch

import (
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Color is an RGBA color with components in [0, 1], matching the
// GenomeTools style color model.
type Color struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
	Alpha float64 `yaml:"alpha"`
}

// Style configures the insertion-track renderer. The zero value is not
// useful; start from DefaultStyle and override fields, or load a YAML
// style file with ReadStyle.
type Style struct {
	// SideLength is the edge length, in pixels, of the triangle glyph.
	SideLength float64 `yaml:"side_length"`
	// TrackHeight is the vertical space reserved for one lane's glyph
	// row, excluding the label row underneath.
	TrackHeight float64 `yaml:"track_height"`
	// Title is the display name of the track block.
	Title string `yaml:"title"`
	// Color is the glyph stroke color.
	Color Color `yaml:"color"`
}

// DefaultStyle matches the historical gene sketcher appearance.
var DefaultStyle = Style{
	SideLength:  15,
	TrackHeight: 20,
	Title:       "Insertion site",
	Color:       Color{Red: 0.27, Green: 0.741, Blue: 0.835, Alpha: 1.0},
}

// ReadStyle decodes a YAML style document from r. Fields absent from
// the document keep their DefaultStyle values.
func ReadStyle(r io.Reader) (Style, error) {
	s := DefaultStyle
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Style{}, errors.Wrap(err, "couldn't read track style")
	}
	return s, nil
}

// ReadStyleFile is a wrapper for ReadStyle that takes a path instead
// of an io.Reader.
func ReadStyleFile(path string) (s Style, err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return ReadStyle(in.Reader(ctx))
}
