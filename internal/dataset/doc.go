// Package dataset provides schema-checked access and statistical kernels over
// gota dataframes for the loan EDA reports.
//
// The package deliberately stays close to the dataframe: it knows nothing
// about loans, targets, or report layouts. It answers the low-level questions
// the report packages ask (which columns exist, which values are missing,
// what are the moments and quantiles of a numeric column, how do two columns
// correlate) and leaves all domain interpretation to the caller.
//
// # Missing values
//
// A value is missing when its gota element reports NA or, for float columns,
// when it is NaN. All statistics in this package operate on the non-missing
// subset of a column; pairwise operations use pairwise-complete observations.
//
// # Error Handling
//
// Functions that look up columns return errors wrapping ErrColumnMissing with
// the offending column name. Statistical functions never error on degenerate
// input: an empty or constant sample yields NaN (or, for quantile intervals,
// fewer buckets), matching the behavior of the numeric libraries this package
// is built on.
package dataset
