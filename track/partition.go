package track

import (
	"math"

	"github.com/pkg/errors"
)

// sentinelPos sits far below any genomic coordinate so the first marker
// of every scan is accepted into the current lane.
const sentinelPos = math.MinInt32

// splitOnce makes one pass over markers, accepting every marker whose
// gap to the previous marker exceeds minDistance and diverting the rest
// to the overflow list. The gap is always measured against the marker
// immediately preceding in scan order, not against the last marker
// accepted into the lane; changing that changes clustering behavior.
func splitOnce(markers []Marker, minDistance int) (overflow, clear []Marker) {
	prev := sentinelPos
	for _, m := range markers {
		if m.Pos-prev <= minDistance {
			overflow = append(overflow, m)
		} else {
			clear = append(clear, m)
		}
		prev = m.Pos
	}
	return overflow, clear
}

// Partition splits markers into an ordered list of lanes. Each pass
// over the remaining markers keeps the well-spaced ones as the next
// lane and feeds the overflow to the following pass, until at most one
// marker remains; a final leftover marker becomes its own lane.
//
// The first marker of every pass is always accepted, so the overflow
// strictly shrinks and the loop terminates after at most n-1 passes.
// Every input marker lands in exactly one lane.
//
// Partition returns an error wrapping ErrPrecondition when given fewer
// than two markers; see LaneSetFor for the caller-side wrapper.
//
// REQUIRES: markers is sorted in ascending position order.
func Partition(markers []Marker, minDistance int) (LaneSet, error) {
	if len(markers) < 2 {
		return nil, errors.Wrapf(ErrPrecondition, "got %d", len(markers))
	}
	overflow, clear := splitOnce(markers, minDistance)
	lanes := LaneSet{Lane(clear)}
	for len(overflow) > 1 {
		overflow, clear = splitOnce(overflow, minDistance)
		lanes = append(lanes, Lane(clear))
	}
	// A single leftover marker can never crowd anything.
	if len(overflow) == 1 {
		lanes = append(lanes, Lane(overflow))
	}
	return lanes, nil
}

// LaneSetFor wraps Partition with the short-list cases the partitioner
// itself rejects: no markers yield an empty LaneSet and a single marker
// yields one single-marker lane.
func LaneSetFor(markers []Marker, minDistance int) (LaneSet, error) {
	switch len(markers) {
	case 0:
		return nil, nil
	case 1:
		return LaneSet{Lane{markers[0]}}, nil
	}
	return Partition(markers, minDistance)
}
