package eda

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"loaneda/internal/dataset"
)

// Re-exported kernel types so callers never need the internal package.
type (
	// Description is one describe-row of a numeric column: count, mean,
	// std, min, quartiles, and max over non-missing values.
	Description = dataset.Description

	// ValueCount is one level of a categorical column with its count.
	ValueCount = dataset.ValueCount

	// Interval is a half-open quantile bucket (Lo, Hi].
	Interval = dataset.Interval
)

// Errors surfaced by report construction and execution
var (
	// ErrTargetNotNumeric indicates the target column does not carry a
	// numeric dtype, so mean-based default rates cannot be computed.
	ErrTargetNotNumeric = errors.New("target column is not numeric")

	// ErrColumnMissing mirrors the dataset-level sentinel for callers that
	// match on it with errors.Is.
	ErrColumnMissing = dataset.ErrColumnMissing

	// ErrNonNumericColumn indicates a numeric report was requested over a
	// non-numeric column.
	ErrNonNumericColumn = dataset.ErrNonNumericColumn

	// ErrEmptyDataset indicates the dataframe holds no rows.
	ErrEmptyDataset = dataset.ErrEmptyDataset
)

// StructureRow is one borrower structure-summary row.
type StructureRow struct {
	Column     string  `json:"column"`
	Dtype      string  `json:"dtype"`
	NMissing   int     `json:"n_missing"`
	MissingPct float64 `json:"missing_pct"`
	NUnique    int     `json:"n_unique"`
}

// CreditStructureRow is one credit structure-summary row. Mean and Std are
// NaN for columns without a numeric dtype.
type CreditStructureRow struct {
	Column     string  `json:"column"`
	Dtype      string  `json:"dtype"`
	NMissing   int     `json:"n_missing"`
	MissingPct float64 `json:"missing_pct"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
}

// BucketRow is the default-rate aggregate for one quantile bucket.
type BucketRow struct {
	Bucket      Interval `json:"bucket"`
	NLoans      int      `json:"n_loans"`
	DefaultRate float64  `json:"default_rate"`
}

// Correlation pairs a credit column with its Pearson correlation against the
// target. Coefficient is NaN when too few complete pairs exist or the column
// has zero variance.
type Correlation struct {
	Column      string  `json:"column"`
	Coefficient float64 `json:"coefficient"`
}

// requireTarget verifies the target column exists and carries a numeric
// dtype. The 0/1 encoding of its values stays a caller precondition.
func requireTarget(df dataframe.DataFrame, targetCol string) error {
	target, err := dataset.Column(df, targetCol)
	if err != nil {
		return err
	}
	if !dataset.IsNumeric(target.Type()) {
		return fmt.Errorf("%w: %s has dtype %s", ErrTargetNotNumeric, targetCol, target.Type())
	}
	return nil
}
