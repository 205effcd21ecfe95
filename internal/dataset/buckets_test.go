package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	iv := Interval{Lo: 1, Hi: 2}

	assert.True(t, iv.Contains(2))
	assert.True(t, iv.Contains(1.5))
	assert.False(t, iv.Contains(1))
	assert.False(t, iv.Contains(2.5))
	assert.Equal(t, "(1, 2]", iv.String())
}

func TestQuantileIntervals(t *testing.T) {
	t.Run("equal population buckets", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
		intervals := QuantileIntervals(xs, 4)
		require.Len(t, intervals, 4)

		// Left edge sits just below the minimum, last edge at the maximum.
		assert.Less(t, intervals[0].Lo, 1.0)
		assert.Equal(t, 8.0, intervals[3].Hi)

		// Contiguous edges.
		for i := 1; i < len(intervals); i++ {
			assert.Equal(t, intervals[i-1].Hi, intervals[i].Lo)
		}

		// Every value lands in exactly one bucket, two per bucket.
		counts := make([]int, len(intervals))
		for _, v := range xs {
			idx := AssignInterval(intervals, v)
			require.GreaterOrEqual(t, idx, 0)
			counts[idx]++
		}
		assert.Equal(t, []int{2, 2, 2, 2}, counts)
	})

	t.Run("duplicate edges collapse", func(t *testing.T) {
		xs := []float64{1, 1, 1, 1, 1, 1, 2, 3}
		intervals := QuantileIntervals(xs, 4)
		assert.Less(t, len(intervals), 4)
		assert.NotEmpty(t, intervals)

		total := 0
		for _, v := range xs {
			idx := AssignInterval(intervals, v)
			require.GreaterOrEqual(t, idx, 0)
			total++
		}
		assert.Equal(t, len(xs), total)
	})

	t.Run("constant sample yields one bucket", func(t *testing.T) {
		xs := []float64{7, 7, 7, 7}
		intervals := QuantileIntervals(xs, 4)
		require.Len(t, intervals, 1)
		assert.True(t, intervals[0].Contains(7))
	})

	t.Run("degenerate input", func(t *testing.T) {
		assert.Nil(t, QuantileIntervals(nil, 4))
		assert.Nil(t, QuantileIntervals([]float64{1, 2}, 0))
	})
}

func TestAssignInterval(t *testing.T) {
	intervals := []Interval{{Lo: 0, Hi: 1}, {Lo: 1, Hi: 2}, {Lo: 2, Hi: 3}}

	tests := []struct {
		name string
		v    float64
		want int
	}{
		{"first bucket", 0.5, 0},
		{"boundary belongs to lower bucket", 1, 0},
		{"middle bucket", 1.5, 1},
		{"last edge", 3, 2},
		{"below range", 0, -1},
		{"above range", 3.5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignInterval(intervals, tt.v))
		})
	}

	t.Run("empty intervals", func(t *testing.T) {
		assert.Equal(t, -1, AssignInterval(nil, 1))
	})
}
