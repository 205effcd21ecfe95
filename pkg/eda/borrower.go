package eda

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gota/gota/dataframe"

	"loaneda/internal/dataset"
)

// BorrowerProfile summarizes the borrower-identity and loan-purpose slice of
// a loan dataset. It holds the dataframe read-only and builds every report
// fresh on each call.
type BorrowerProfile struct {
	df        dataframe.DataFrame
	targetCol string
	logger    *slog.Logger
}

// NewBorrowerProfile creates a borrower report component over the given
// dataframe. An empty targetCol selects DefaultTargetColumn; a nil logger
// selects slog.Default().
//
// Construction fails fast when the frame has no rows, when any column of
// BorrowerColumns is absent (the error names every missing column), or when
// the target column is absent or non-numeric.
func NewBorrowerProfile(df dataframe.DataFrame, targetCol string, logger *slog.Logger) (*BorrowerProfile, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if targetCol == "" {
		targetCol = DefaultTargetColumn
	}

	if df.Nrow() == 0 {
		return nil, ErrEmptyDataset
	}
	if err := dataset.RequireColumns(df, BorrowerColumns); err != nil {
		return nil, fmt.Errorf("borrower profile: %w", err)
	}
	if err := requireTarget(df, targetCol); err != nil {
		return nil, fmt.Errorf("borrower profile: %w", err)
	}

	return &BorrowerProfile{
		df:        df,
		targetCol: targetCol,
		logger:    logger,
	}, nil
}

// StructureSummary returns one row per column in BorrowerColumns, in universe
// order, with the column's dtype, missing count, missing fraction, and
// distinct non-missing value count.
func (b *BorrowerProfile) StructureSummary() ([]StructureRow, error) {
	total := b.df.Nrow()
	rows := make([]StructureRow, 0, len(BorrowerColumns))

	for _, name := range BorrowerColumns {
		col, err := dataset.Column(b.df, name)
		if err != nil {
			return nil, fmt.Errorf("structure summary: %w", err)
		}

		nMissing := dataset.MissingCount(col)
		rows = append(rows, StructureRow{
			Column:     name,
			Dtype:      string(col.Type()),
			NMissing:   nMissing,
			MissingPct: float64(nMissing) / float64(total),
			NUnique:    dataset.NUnique(col),
		})
	}

	b.logger.Debug("borrower structure summary computed",
		"columns", len(rows),
		"rows", total,
	)
	return rows, nil
}

// IncomeSummary returns descriptive statistics (count, mean, std, min,
// quartiles, max) for the income columns, one Description per column.
func (b *BorrowerProfile) IncomeSummary() ([]Description, error) {
	out := make([]Description, 0, len(IncomeColumns))
	for _, name := range IncomeColumns {
		col, err := dataset.Column(b.df, name)
		if err != nil {
			return nil, fmt.Errorf("income summary: %w", err)
		}
		if !dataset.IsNumeric(col.Type()) {
			return nil, fmt.Errorf("income summary: %w: %s has dtype %s",
				ErrNonNumericColumn, name, col.Type())
		}
		out = append(out, dataset.Describe(col))
	}
	return out, nil
}

// CategoricalFreqs returns, for each column in FreqColumns, the top maxLevels
// distinct values ranked by descending frequency. maxLevels < 1 selects
// DefaultMaxLevels. Equal counts keep first-encounter order.
func (b *BorrowerProfile) CategoricalFreqs(maxLevels int) (map[string][]ValueCount, error) {
	if maxLevels < 1 {
		maxLevels = DefaultMaxLevels
	}

	out := make(map[string][]ValueCount, len(FreqColumns))
	for _, name := range FreqColumns {
		col, err := dataset.Column(b.df, name)
		if err != nil {
			return nil, fmt.Errorf("categorical freqs: %w", err)
		}

		counts := dataset.ValueCounts(col)
		if len(counts) > maxLevels {
			counts = counts[:maxLevels]
		}
		out[name] = counts
	}
	return out, nil
}

// DefaultRateByCategory groups rows by the distinct non-missing values of col
// and returns the mean of the target column within each group. With a 0/1
// target the result is the default rate per category, in [0, 1]. Rows whose
// target value is missing contribute to neither sum nor count; a category
// whose targets are all missing reports NaN.
func (b *BorrowerProfile) DefaultRateByCategory(col string) (map[string]float64, error) {
	colSeries, err := dataset.Column(b.df, col)
	if err != nil {
		return nil, fmt.Errorf("default rate by category: %w", err)
	}
	target, err := dataset.Column(b.df, b.targetCol)
	if err != nil {
		return nil, fmt.Errorf("default rate by category: %w", err)
	}

	records := colSeries.Records()
	targetValues := target.Float()
	targetMissing := dataset.MissingMask(target)
	colMissing := dataset.MissingMask(colSeries)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := 0; i < colSeries.Len(); i++ {
		if colMissing[i] {
			continue
		}
		key := records[i]
		if _, ok := sums[key]; !ok {
			sums[key] = 0
		}
		if targetMissing[i] {
			continue
		}
		sums[key] += targetValues[i]
		counts[key]++
	}

	rates := make(map[string]float64, len(sums))
	for key, sum := range sums {
		if counts[key] == 0 {
			rates[key] = math.NaN()
			continue
		}
		rates[key] = sum / float64(counts[key])
	}

	b.logger.Debug("default rate by category computed",
		"column", col,
		"categories", len(rates),
	)
	return rates, nil
}
