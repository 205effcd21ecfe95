package eda

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gota/gota/dataframe"

	"loaneda/internal/dataset"
)

// CreditHistory summarizes the numeric credit-history slice of a loan
// dataset: structure with moments, quantile-bucketed default rates, and
// correlation of every universe column with the outcome.
type CreditHistory struct {
	df        dataframe.DataFrame
	targetCol string
	logger    *slog.Logger
}

// NewCreditHistory creates a credit-history report component over the given
// dataframe. An empty targetCol selects DefaultTargetColumn; a nil logger
// selects slog.Default(). Construction fails fast when the frame has no rows,
// when any column of CreditNumericColumns is absent, or when the target
// column is absent or non-numeric.
func NewCreditHistory(df dataframe.DataFrame, targetCol string, logger *slog.Logger) (*CreditHistory, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if targetCol == "" {
		targetCol = DefaultTargetColumn
	}

	if df.Nrow() == 0 {
		return nil, ErrEmptyDataset
	}
	if err := dataset.RequireColumns(df, CreditNumericColumns); err != nil {
		return nil, fmt.Errorf("credit history: %w", err)
	}
	if err := requireTarget(df, targetCol); err != nil {
		return nil, fmt.Errorf("credit history: %w", err)
	}

	return &CreditHistory{
		df:        df,
		targetCol: targetCol,
		logger:    logger,
	}, nil
}

// StructureSummary returns one row per column in CreditNumericColumns, in
// universe order, with dtype, missing count, and missing fraction. Mean and
// standard deviation are computed over non-missing values for columns with a
// numeric dtype and reported as NaN otherwise.
func (c *CreditHistory) StructureSummary() ([]CreditStructureRow, error) {
	total := c.df.Nrow()
	rows := make([]CreditStructureRow, 0, len(CreditNumericColumns))

	for _, name := range CreditNumericColumns {
		col, err := dataset.Column(c.df, name)
		if err != nil {
			return nil, fmt.Errorf("credit structure summary: %w", err)
		}

		nMissing := dataset.MissingCount(col)
		row := CreditStructureRow{
			Column:     name,
			Dtype:      string(col.Type()),
			NMissing:   nMissing,
			MissingPct: float64(nMissing) / float64(total),
			Mean:       math.NaN(),
			Std:        math.NaN(),
		}
		if dataset.IsNumeric(col.Type()) {
			values := dataset.NonMissing(col)
			row.Mean = dataset.Mean(values)
			row.Std = dataset.StdDev(values)
		}
		rows = append(rows, row)
	}

	c.logger.Debug("credit structure summary computed",
		"columns", len(rows),
		"rows", total,
	)
	return rows, nil
}

// DefaultRateByBucket partitions the non-missing values of col into up to
// bins quantile buckets of equal population and returns, per bucket in
// ascending order, the row count and the mean of the target column. bins < 1
// selects DefaultBuckets. Duplicate quantile edges collapse silently, so
// fewer than bins rows can come back when the column lacks enough distinct
// values.
func (c *CreditHistory) DefaultRateByBucket(col string, bins int) ([]BucketRow, error) {
	if bins < 1 {
		bins = DefaultBuckets
	}

	colSeries, err := dataset.Column(c.df, col)
	if err != nil {
		return nil, fmt.Errorf("default rate by bucket: %w", err)
	}
	if !dataset.IsNumeric(colSeries.Type()) {
		return nil, fmt.Errorf("default rate by bucket: %w: %s has dtype %s",
			ErrNonNumericColumn, col, colSeries.Type())
	}
	target, err := dataset.Column(c.df, c.targetCol)
	if err != nil {
		return nil, fmt.Errorf("default rate by bucket: %w", err)
	}

	values := colSeries.Float()
	colMissing := dataset.MissingMask(colSeries)
	targetValues := target.Float()
	targetMissing := dataset.MissingMask(target)

	var sample []float64
	for i, v := range values {
		if !colMissing[i] {
			sample = append(sample, v)
		}
	}

	intervals := dataset.QuantileIntervals(sample, bins)
	if len(intervals) == 0 {
		return nil, nil
	}

	counts := make([]int, len(intervals))
	sums := make([]float64, len(intervals))
	targetCounts := make([]int, len(intervals))
	for i, v := range values {
		if colMissing[i] {
			continue
		}
		idx := dataset.AssignInterval(intervals, v)
		if idx < 0 {
			continue
		}
		counts[idx]++
		if targetMissing[i] {
			continue
		}
		sums[idx] += targetValues[i]
		targetCounts[idx]++
	}

	rows := make([]BucketRow, 0, len(intervals))
	for i, iv := range intervals {
		rate := math.NaN()
		if targetCounts[i] > 0 {
			rate = sums[i] / float64(targetCounts[i])
		}
		rows = append(rows, BucketRow{
			Bucket:      iv,
			NLoans:      counts[i],
			DefaultRate: rate,
		})
	}

	c.logger.Debug("default rate by bucket computed",
		"column", col,
		"requested_bins", bins,
		"effective_bins", len(rows),
	)
	return rows, nil
}

// CorrelationWithDefault returns the pairwise-complete Pearson correlation of
// every column in CreditNumericColumns with the target, in universe order.
// Columns with zero variance or fewer than two complete pairs report NaN; no
// column is omitted.
func (c *CreditHistory) CorrelationWithDefault() ([]Correlation, error) {
	target, err := dataset.Column(c.df, c.targetCol)
	if err != nil {
		return nil, fmt.Errorf("correlation with default: %w", err)
	}

	out := make([]Correlation, 0, len(CreditNumericColumns))
	for _, name := range CreditNumericColumns {
		col, err := dataset.Column(c.df, name)
		if err != nil {
			return nil, fmt.Errorf("correlation with default: %w", err)
		}
		out = append(out, Correlation{
			Column:      name,
			Coefficient: dataset.PairwiseCorrelation(col, target),
		})
	}
	return out, nil
}
