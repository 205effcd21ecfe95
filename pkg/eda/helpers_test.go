package eda

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"
)

// borrowerFrame builds a minimal valid borrower dataset with nrow rows. Every
// universe column defaults to a constant string column and the target to an
// all-zero int column; overrides replace individual columns (keyed by column
// name, the series name is set from the key).
func borrowerFrame(t *testing.T, nrow int, overrides map[string]series.Series) dataframe.DataFrame {
	t.Helper()
	return universeFrame(t, nrow, BorrowerColumns, constantStrings(nrow), overrides)
}

// constantStrings returns a default-column builder producing nrow copies of
// a constant string value.
func constantStrings(nrow int) func(string) series.Series {
	return func(name string) series.Series {
		vals := make([]string, nrow)
		for i := range vals {
			vals[i] = "x"
		}
		return series.New(vals, series.String, name)
	}
}

// creditFrame builds a minimal valid credit dataset with nrow rows. Universe
// columns default to an ascending float sequence so quantile buckets always
// have distinct edges.
func creditFrame(t *testing.T, nrow int, overrides map[string]series.Series) dataframe.DataFrame {
	t.Helper()
	return universeFrame(t, nrow, CreditNumericColumns, func(name string) series.Series {
		vals := make([]float64, nrow)
		for i := range vals {
			vals[i] = float64(i + 1)
		}
		return series.New(vals, series.Float, name)
	}, overrides)
}

func universeFrame(t *testing.T, nrow int, universe []string, defaultCol func(string) series.Series, overrides map[string]series.Series) dataframe.DataFrame {
	t.Helper()

	cols := make([]series.Series, 0, len(universe)+1)
	for _, name := range universe {
		if s, ok := overrides[name]; ok {
			s.Name = name
			cols = append(cols, s)
			continue
		}
		cols = append(cols, defaultCol(name))
	}

	if s, ok := overrides[DefaultTargetColumn]; ok {
		s.Name = DefaultTargetColumn
		cols = append(cols, s)
	} else {
		target := make([]int, nrow)
		cols = append(cols, series.New(target, series.Int, DefaultTargetColumn))
	}

	df := dataframe.New(cols...)
	require.NoError(t, df.Err)
	return df
}

// binaryTarget builds a 0/1 int target series from the given values.
func binaryTarget(vals []int) series.Series {
	return series.New(vals, series.Int, DefaultTargetColumn)
}

// run is a (value, count) pair for building categorical columns.
type run struct {
	value string
	count int
}

// expand builds a string column from value runs, preserving order.
func expand(runs ...run) []string {
	var out []string
	for _, r := range runs {
		for i := 0; i < r.count; i++ {
			out = append(out, r.value)
		}
	}
	return out
}
