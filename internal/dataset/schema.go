package dataset

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// HasColumn reports whether the dataframe contains a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// RequireColumns verifies that every named column exists in the dataframe.
// All absent columns are reported in a single error so a caller sees the full
// schema gap at once rather than one column per attempt.
func RequireColumns(df dataframe.DataFrame, cols []string) error {
	present := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		present[n] = true
	}

	var missing []string
	for _, col := range cols {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrColumnMissing, strings.Join(missing, ", "))
	}
	return nil
}

// Column returns the named column, or an error wrapping ErrColumnMissing when
// the dataframe has no such column.
func Column(df dataframe.DataFrame, name string) (series.Series, error) {
	if !HasColumn(df, name) {
		return series.Series{}, fmt.Errorf("%w: %s", ErrColumnMissing, name)
	}

	col := df.Col(name)
	if col.Err != nil {
		return series.Series{}, fmt.Errorf("access column %s: %w", name, col.Err)
	}
	return col, nil
}
