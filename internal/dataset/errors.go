package dataset

import "errors"

// Predefined errors for common failure scenarios
var (
	// ErrColumnMissing indicates a required column is absent from the dataframe
	ErrColumnMissing = errors.New("column missing from dataset")

	// ErrNonNumericColumn indicates a numeric operation was requested on a
	// non-numeric column
	ErrNonNumericColumn = errors.New("column is not numeric")

	// ErrEmptyDataset indicates the dataframe holds no rows
	ErrEmptyDataset = errors.New("dataset has no rows")
)
