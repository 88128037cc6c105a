package track

import (
	"github.com/biogo/store/interval"
)

// A CrowdedPair is a pair of markers in one lane that sit at or below
// the minimum distance from each other, in position order.
type CrowdedPair struct {
	A, B Marker
}

// markerInterval pads a marker position out to the minimum distance so
// that two markers crowd each other exactly when their intervals
// overlap.
type markerInterval struct {
	id         uintptr
	start, end int
}

func (i markerInterval) Overlap(b interval.IntRange) bool {
	return i.start < b.End && i.end > b.Start
}
func (i markerInterval) ID() uintptr { return i.id }
func (i markerInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.start, End: i.end}
}

// Crowding reports the pairs of markers within lane that sit closer
// than or exactly at minDistance. It audits a lane pairwise,
// independently of how the lane was assembled; Partition's guarantee
// is phrased in terms of scan-adjacent markers, and lanes built by
// hand (or with a different minimum) can hold closer pairs. Renderers
// can use the report to warn about glyph collisions.
//
// Pairs are reported with A before B in lane order.
func Crowding(lane Lane, minDistance int) []CrowdedPair {
	if len(lane) < 2 || minDistance < 0 {
		return nil
	}
	var tree interval.IntTree
	for i, m := range lane {
		// Half-open [pos, pos+min+1) so that a gap of exactly
		// minDistance still counts as crowded.
		iv := markerInterval{id: uintptr(i), start: m.Pos, end: m.Pos + minDistance + 1}
		if err := tree.Insert(iv, true); err != nil {
			panic(err) // unreachable: the interval is never inverted
		}
	}
	tree.AdjustRanges()
	var pairs []CrowdedPair
	for i, m := range lane {
		q := markerInterval{start: m.Pos, end: m.Pos + minDistance + 1}
		for _, o := range tree.Get(q) {
			j := int(o.(markerInterval).id)
			if j <= i {
				continue
			}
			pairs = append(pairs, CrowdedPair{A: m, B: lane[j]})
		}
	}
	return pairs
}
