package track

import (
	"github.com/pkg/errors"
)

var (
	// ErrParse is returned by Load when a track record is malformed.
	// No partial result is returned; the whole load fails.
	ErrParse = errors.New("malformed track record")
	// ErrPrecondition is returned by Partition when given fewer than two
	// markers. Callers with short marker lists should use LaneSetFor.
	ErrPrecondition = errors.New("marker list must contain more than one element")
)

// A Marker is a named point feature on a gene, for example an miRNA
// insertion site. Markers are immutable once loaded.
type Marker struct {
	// Name is an opaque label, e.g. a feature or variant identifier.
	Name string
	// Pos is the genomic coordinate of the feature.
	Pos int
}

// GeneMarkers maps a gene name to its markers, sorted in ascending
// position order. Markers with equal positions keep their input order.
// A gene without markers has no entry.
//
// GeneMarkers is read-only after Load and safe to share across
// goroutines partitioning different genes.
type GeneMarkers map[string][]Marker

// A Lane is one visual track row. Any two markers that were adjacent
// in the position-sorted scan and both landed in the lane are spaced
// more than the minimum distance apart.
type Lane []Marker

// A LaneSet is the ordered list of lanes for one gene. Lane 0 is the
// primary lane; later lanes hold progressively more tightly packed
// overflow.
type LaneSet []Lane

// MarkerCount returns the total number of markers across all lanes.
func (ls LaneSet) MarkerCount() int {
	n := 0
	for _, lane := range ls {
		n += len(lane)
	}
	return n
}

// Markers returns all markers in lane order, lane 0 first.
func (ls LaneSet) Markers() []Marker {
	markers := make([]Marker, 0, ls.MarkerCount())
	for _, lane := range ls {
		markers = append(markers, lane...)
	}
	return markers
}

// Opts configures lane partitioning.
type Opts struct {
	// MinDistance is the spacing, in the marker coordinate unit
	// (typically base pairs), at or below which two markers are
	// considered to crowd each other.
	MinDistance int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MinDistance: 5000,
}
