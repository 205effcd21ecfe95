package dataset

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// IsNumeric reports whether the series type is one of the numeric dtypes.
func IsNumeric(t series.Type) bool {
	return t == series.Int || t == series.Float
}

// isMissing reports whether element i of the series is a missing value.
// Float columns carry NaN for missing entries, so both representations count.
func isMissing(s series.Series, i int) bool {
	elem := s.Elem(i)
	if elem.IsNA() {
		return true
	}
	if s.Type() == series.Float && math.IsNaN(elem.Float()) {
		return true
	}
	return false
}

// MissingMask returns a per-element missingness mask for the series.
func MissingMask(s series.Series) []bool {
	mask := make([]bool, s.Len())
	for i := range mask {
		mask[i] = isMissing(s, i)
	}
	return mask
}

// MissingCount returns the number of missing values in the series.
func MissingCount(s series.Series) int {
	count := 0
	for i := 0; i < s.Len(); i++ {
		if isMissing(s, i) {
			count++
		}
	}
	return count
}

// NUnique returns the number of distinct non-missing values in the series.
func NUnique(s series.Series) int {
	records := s.Records()
	seen := make(map[string]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		if isMissing(s, i) {
			continue
		}
		seen[records[i]] = true
	}
	return len(seen)
}

// NonMissing returns the non-missing values of a numeric series as floats,
// preserving row order.
func NonMissing(s series.Series) []float64 {
	values := s.Float()
	out := make([]float64, 0, len(values))
	for i, v := range values {
		if isMissing(s, i) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Mean returns the arithmetic mean of xs, or NaN for an empty sample.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// StdDev returns the sample standard deviation (n-1 denominator) of xs, or
// NaN when fewer than two observations are available.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// Quantile returns the p-quantile of xs using linear interpolation between
// order statistics, the same rule the report consumers expect from their
// previous tooling. xs need not be sorted; p must be in [0, 1].
func Quantile(xs []float64, p float64) float64 {
	if len(xs) == 0 || p < 0 || p > 1 {
		return math.NaN()
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Description summarizes the distribution of a numeric column over its
// non-missing values.
type Description struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Describe computes count, mean, std, min, quartiles, and max for a numeric
// series. A column with no non-missing values yields Count 0 and NaN for
// every statistic.
func Describe(s series.Series) Description {
	xs := NonMissing(s)

	desc := Description{
		Column: s.Name,
		Count:  len(xs),
		Mean:   Mean(xs),
		Std:    StdDev(xs),
		Min:    math.NaN(),
		P25:    Quantile(xs, 0.25),
		Median: Quantile(xs, 0.50),
		P75:    Quantile(xs, 0.75),
		Max:    math.NaN(),
	}
	if len(xs) > 0 {
		desc.Min = floats.Min(xs)
		desc.Max = floats.Max(xs)
	}
	return desc
}
