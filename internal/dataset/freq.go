package dataset

import (
	"sort"

	"github.com/go-gota/gota/series"
)

// ValueCount is one level of a categorical column with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts returns the distinct non-missing values of a series with their
// counts, ordered by descending count. Equal counts keep the order in which
// the values were first encountered, so the ranking is deterministic for a
// given row order.
func ValueCounts(s series.Series) []ValueCount {
	records := s.Records()
	counts := make(map[string]int, s.Len())
	var order []string

	for i := 0; i < s.Len(); i++ {
		if isMissing(s, i) {
			continue
		}
		v := records[i]
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
