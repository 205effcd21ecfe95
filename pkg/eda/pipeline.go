package eda

import (
	"fmt"
	"log/slog"
	"time"
)

// Step is one named report step of a pipeline. Steps are independent: they
// share no state beyond the report component they close over.
type Step struct {
	Name string
	Run  func() (any, error)
}

// BorrowerSteps returns the ordered borrower report steps. The freqs step is
// bound to DefaultMaxLevels levels per column.
func BorrowerSteps(b *BorrowerProfile) []Step {
	return []Step{
		{Name: "structure", Run: func() (any, error) { return b.StructureSummary() }},
		{Name: "income", Run: func() (any, error) { return b.IncomeSummary() }},
		{Name: "freqs", Run: func() (any, error) { return b.CategoricalFreqs(DefaultMaxLevels) }},
		{Name: "default_by_home_ownership", Run: func() (any, error) { return b.DefaultRateByCategory("home_ownership") }},
		{Name: "default_by_purpose", Run: func() (any, error) { return b.DefaultRateByCategory("purpose") }},
	}
}

// RunBorrowerPipeline runs every borrower report step in order and collects
// the results by step name. The first failing step aborts the run.
func RunBorrowerPipeline(b *BorrowerProfile) (map[string]any, error) {
	return runSteps(b.logger, "borrower_eda", BorrowerSteps(b))
}

// CreditHistorySteps returns the ordered credit-history report steps. Both
// bucket steps use five quantile buckets.
func CreditHistorySteps(c *CreditHistory) []Step {
	return []Step{
		{Name: "structure_summary", Run: func() (any, error) { return c.StructureSummary() }},
		{Name: "dti_buckets", Run: func() (any, error) { return c.DefaultRateByBucket("dti", 5) }},
		{Name: "revol_util_buckets", Run: func() (any, error) { return c.DefaultRateByBucket("revol_util", 5) }},
		{Name: "correlation_with_default", Run: func() (any, error) { return c.CorrelationWithDefault() }},
	}
}

// RunCreditHistoryReport runs every credit-history report step in order and
// collects the results by step name. The first failing step aborts the run.
func RunCreditHistoryReport(c *CreditHistory) (map[string]any, error) {
	return runSteps(c.logger, "credit_history", CreditHistorySteps(c))
}

// runSteps executes steps in declaration order. No error isolation between
// steps: a failure propagates immediately, wrapped with the step name, and
// no partial result map is returned.
func runSteps(logger *slog.Logger, pipeline string, steps []Step) (map[string]any, error) {
	start := time.Now()
	results := make(map[string]any, len(steps))

	for _, step := range steps {
		logger.Debug("running report step",
			"pipeline", pipeline,
			"step", step.Name,
		)

		out, err := step.Run()
		if err != nil {
			logger.Error("report step failed",
				"pipeline", pipeline,
				"step", step.Name,
				"error", err,
			)
			return nil, fmt.Errorf("step %s: %w", step.Name, err)
		}
		results[step.Name] = out
	}

	logger.Info("report pipeline completed",
		"pipeline", pipeline,
		"steps", len(steps),
		"duration", time.Since(start),
	)
	return results, nil
}
