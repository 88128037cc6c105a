// +build !cairo

package sketch

import (
	"github.com/pkg/errors"
)

// Sketch draws the gene structure described by a GFF3 file. It is only
// available in builds tagged "cairo", which link against the
// GenomeTools annotation-sketch library; other builds can still render
// marker tracks over the window reported by GFF3Range.
func Sketch(gffFile, styleFile, outFile string, width uint) (Range, error) {
	return Range{}, errors.New("gene structure diagrams need a binary built with the cairo tag")
}
