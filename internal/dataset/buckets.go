package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Interval is a half-open bucket (Lo, Hi] over a numeric column's values.
type Interval struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether v falls inside the interval.
func (iv Interval) Contains(v float64) bool {
	return v > iv.Lo && v <= iv.Hi
}

// String returns the interval in the conventional "(lo, hi]" notation.
func (iv Interval) String() string {
	return fmt.Sprintf("(%g, %g]", iv.Lo, iv.Hi)
}

// QuantileIntervals partitions the sample into up to `bins` equal-population
// buckets delimited by quantile edges. Duplicate edges are collapsed, so the
// effective bucket count can drop below `bins` when the sample does not hold
// enough distinct values; a constant sample yields a single bucket. The
// leftmost edge is nudged below the sample minimum so the minimum itself is
// covered by the first half-open interval.
//
// Returns nil for an empty sample or bins < 1.
func QuantileIntervals(xs []float64, bins int) []Interval {
	if len(xs) == 0 || bins < 1 {
		return nil
	}

	edges := make([]float64, 0, bins+1)
	for i := 0; i <= bins; i++ {
		edges = append(edges, Quantile(xs, float64(i)/float64(bins)))
	}

	// Collapse duplicate quantile edges.
	unique := edges[:1]
	for _, e := range edges[1:] {
		if e != unique[len(unique)-1] {
			unique = append(unique, e)
		}
	}

	// Nudge the left edge below the minimum so (lo, hi] captures it. A
	// fully constant sample collapses to one edge and still gets one bucket.
	lo := unique[0]
	adj := 0.001
	if lo != 0 {
		adj = math.Abs(lo) * 0.001
	}
	if len(unique) == 1 {
		return []Interval{{Lo: lo - adj, Hi: lo}}
	}
	unique[0] = lo - adj

	intervals := make([]Interval, 0, len(unique)-1)
	for i := 1; i < len(unique); i++ {
		intervals = append(intervals, Interval{Lo: unique[i-1], Hi: unique[i]})
	}
	return intervals
}

// AssignInterval returns the index in intervals whose (lo, hi] range holds v,
// or -1 when v lies outside every interval. intervals must be sorted and
// contiguous, as produced by QuantileIntervals.
func AssignInterval(intervals []Interval, v float64) int {
	if len(intervals) == 0 {
		return -1
	}
	idx := sort.Search(len(intervals), func(i int) bool {
		return v <= intervals[i].Hi
	})
	if idx == len(intervals) || !intervals[idx].Contains(v) {
		return -1
	}
	return idx
}
