// Package eda provides exploratory-data-analysis reports over an in-memory
// loan dataset held as a gota dataframe.
//
// Two independent report components cover the two thematic slices of the
// dataset:
//
//  1. BorrowerProfile: borrower-identity and loan-purpose columns. Structure
//     summary, income distribution, categorical frequencies, and default rate
//     per category.
//  2. CreditHistory: numeric credit-history columns. Structure summary with
//     moments, quantile-bucketed default rates, and correlation of every
//     column with the outcome.
//
// Each component holds a read-only reference to the dataframe plus the name
// of a binary target column (default "loan_status", encoded 0/1) and exposes
// report methods that build their result fresh on every call. Nothing is
// cached and the dataframe is never mutated, so concurrent read-only use over
// the same frame is safe.
//
// # Usage
//
// Construct a report component from a frame you already hold:
//
//	profile, err := eda.NewBorrowerProfile(df, "", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := profile.StructureSummary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or run a whole pipeline and collect every report by step name:
//
//	results, err := eda.RunBorrowerPipeline(profile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	freqs := results["freqs"].(map[string][]eda.ValueCount)
//
// # Schema requirements
//
// Construction fails fast when the dataframe is missing any column of the
// component's fixed column universe, or when the target column is absent or
// non-numeric. The error names every absent column. Report methods that take
// a column argument additionally check that column on each call.
//
// # Error Handling
//
// There is no partial-failure recovery: the first failing step aborts a
// pipeline run and the error propagates to the caller wrapped with the step
// name. Degenerate statistics are not errors: insufficient distinct values
// simply produce fewer quantile buckets, and correlations or means over
// empty samples come back as NaN.
package eda
