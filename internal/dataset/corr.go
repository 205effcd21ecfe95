package dataset

import (
	"math"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// PairwiseCorrelation computes the Pearson correlation coefficient between two
// numeric series over pairwise-complete observations: rows where either value
// is missing are dropped before the computation. Fewer than two complete
// pairs, or zero variance in either column, yields NaN.
func PairwiseCorrelation(x, y series.Series) float64 {
	if x.Len() != y.Len() {
		return math.NaN()
	}

	xf := x.Float()
	yf := y.Float()
	xs := make([]float64, 0, len(xf))
	ys := make([]float64, 0, len(yf))
	for i := 0; i < x.Len(); i++ {
		if isMissing(x, i) || isMissing(y, i) {
			continue
		}
		xs = append(xs, xf[i])
		ys = append(ys, yf[i])
	}

	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
