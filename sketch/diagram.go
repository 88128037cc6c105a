// +build cairo

package sketch

import (
	gt "github.com/genometools/genometools/gtgo"
	"github.com/pkg/errors"
)

// Sketch draws the gene structure described by a GFF3 file to a PNG
// file using the GenomeTools annotation-sketch pipeline. styleFile is
// a GenomeTools Lua style file; width is the target image width in
// pixels. The coordinate window that was drawn is returned so callers
// can project marker tracks onto the same axis.
func Sketch(gffFile, styleFile, outFile string, width uint) (Range, error) {
	fi := gt.FeatureIndexMemoryNew()
	if err := fi.AddGFF3File(gffFile); err != nil {
		return Range{}, errors.Wrapf(err, "add GFF3 %s", gffFile)
	}
	seqID, err := fi.GetFirstSeqID()
	if err != nil {
		return Range{}, err
	}
	r, err := fi.GetRangeForSeqID(seqID)
	if err != nil {
		return Range{}, err
	}
	style, err := gt.StyleNew()
	if err != nil {
		return Range{}, err
	}
	if err := style.LoadFile(styleFile); err != nil {
		return Range{}, errors.Wrapf(err, "load style %s", styleFile)
	}
	diagram, err := gt.DiagramNew(fi, seqID, *r, style)
	if err != nil {
		return Range{}, err
	}
	layout, err := gt.LayoutNew(diagram, width, style)
	if err != nil {
		return Range{}, err
	}
	height, err := layout.GetHeight()
	if err != nil {
		return Range{}, err
	}
	canvas, err := gt.CanvasCairoFileNew(style, width, height)
	if err != nil {
		return Range{}, err
	}
	if err := layout.Sketch(canvas.Canvas()); err != nil {
		return Range{}, err
	}
	if err := canvas.Write(outFile); err != nil {
		return Range{}, errors.Wrapf(err, "write %s", outFile)
	}
	return Range{Start: r.Start, End: r.End}, nil
}
