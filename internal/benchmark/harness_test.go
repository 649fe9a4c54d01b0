package benchmark

import (
	"math"
	"testing"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
	"github.com/aleister1102/docdiff/internal/differ"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()

	registry, err := differ.NewEngineRegistryBuilder().
		WithLogger(zerolog.Nop()).
		Build()
	require.NoError(t, err)

	harness, err := NewHarnessBuilder().
		WithRegistry(registry).
		WithLogger(zerolog.Nop()).
		Build()
	require.NoError(t, err)

	return harness
}

func TestHarnessBuilder_RequiresRegistry(t *testing.T) {
	_, err := NewHarnessBuilder().Build()
	assert.Error(t, err)
}

func TestHarness_Compare(t *testing.T) {
	harness := newTestHarness(t)

	original := "The analysis of the data produced significant results for the discussion."
	revised := "The review of the data produced notable results for the conclusion."

	result, err := harness.Compare(original, revised, 1)

	require.NoError(t, err)
	// One result per granularity for each engine.
	require.Len(t, result.LcsResults, 2)
	require.Len(t, result.BitResults, 2)
	assert.NotEmpty(t, result.Recommendation)
	assert.GreaterOrEqual(t, result.PerformanceDifference, 0.0)

	for _, benchmarkResult := range append(result.LcsResults, result.BitResults...) {
		assert.False(t, benchmarkResult.Failed)
		assert.GreaterOrEqual(t, benchmarkResult.Accuracy, 0.0)
		assert.LessOrEqual(t, benchmarkResult.Accuracy, 1.0)
		assert.GreaterOrEqual(t, benchmarkResult.ComputationTimeMs, 0.0)
	}
}

func TestHarness_Compare_RejectsInvalidIterations(t *testing.T) {
	harness := newTestHarness(t)

	_, err := harness.Compare("a", "b", 0)
	assert.Error(t, err)
}

func TestHarness_Compare_DeterministicDiffCounts(t *testing.T) {
	harness := newTestHarness(t)

	original := "The methodology chapter describes the data collection procedure."
	revised := "The methodology section describes the data sampling procedure."

	first, err := harness.Compare(original, revised, 1)
	require.NoError(t, err)
	second, err := harness.Compare(original, revised, 1)
	require.NoError(t, err)

	for i := range first.LcsResults {
		assert.Equal(t, first.LcsResults[i].DiffCount, second.LcsResults[i].DiffCount)
	}
}

func TestHarness_RunSuite_DefaultCases(t *testing.T) {
	harness := newTestHarness(t)

	cases := DefaultTestCases()
	result, err := harness.RunSuite(cases, 1)

	require.NoError(t, err)
	require.Len(t, result.LcsResults, len(cases))
	require.Len(t, result.BitResults, len(cases))
	assert.NotEmpty(t, result.Recommendation)
}

func TestHarness_RunSuite_RejectsEmptyCases(t *testing.T) {
	harness := newTestHarness(t)

	_, err := harness.RunSuite(nil, 1)
	assert.Error(t, err)
}

// failingEngine always returns an error, standing in for an engine crash.
type failingEngine struct{}

func (f *failingEngine) Name() string { return "failing" }

func (f *failingEngine) Diff(_, _ string, _ models.Granularity) ([]models.DiffItem, error) {
	return nil, errorwrapper.NewComputationError("failing", "diff", nil)
}

// panickingEngine panics mid-computation.
type panickingEngine struct{}

func (p *panickingEngine) Name() string { return "panicking" }

func (p *panickingEngine) Diff(_, _ string, _ models.Granularity) ([]models.DiffItem, error) {
	panic("table allocation failed")
}

func TestHarness_Measure_ConvertsErrorToFailedResult(t *testing.T) {
	harness := newTestHarness(t)

	outcome := harness.measure(&failingEngine{}, "case", "a text", "b text", models.GranularityWord)

	assert.True(t, outcome.result.Failed)
	assert.True(t, math.IsInf(outcome.result.ComputationTimeMs, 1))
	assert.Equal(t, 0, outcome.result.DiffCount)
	assert.Equal(t, 0.0, outcome.result.Accuracy)
}

func TestHarness_Measure_RecoversPanic(t *testing.T) {
	harness := newTestHarness(t)

	outcome := harness.measure(&panickingEngine{}, "case", "a text", "b text", models.GranularityWord)

	assert.True(t, outcome.result.Failed)
	assert.True(t, math.IsInf(outcome.result.ComputationTimeMs, 1))
}

func TestWeightedScore_FailedRunScoresLowest(t *testing.T) {
	failed := models.NewFailedBenchmarkResult("lcs", "case")
	healthy := models.BenchmarkResult{
		Engine:            "bitdiff",
		TestCase:          "case",
		ComputationTimeMs: 5,
		MemoryDeltaBytes:  1024,
		DiffCount:         3,
		Accuracy:          0.9,
	}

	assert.Greater(t, weightedScore(healthy), weightedScore(failed))
}

func TestWeightedScore_GuardsAgainstZeroDenominators(t *testing.T) {
	result := models.BenchmarkResult{ComputationTimeMs: 0, MemoryDeltaBytes: 0, Accuracy: 1}

	score := weightedScore(result)

	assert.False(t, math.IsInf(score, 1))
	assert.False(t, math.IsNaN(score))
	// Clamped denominators of 1 yield the maximum achievable score.
	assert.InDelta(t, 0.4+0.4+0.2, score, 1e-9)
}

func TestFinalize_RecommendsHealthyEngineOverFailedOne(t *testing.T) {
	harness := newTestHarness(t)

	healthy := models.BenchmarkResult{ComputationTimeMs: 5, MemoryDeltaBytes: 2048, Accuracy: 0.8}

	// LCS failed, bit-diff healthy: the harness must recommend bit-diff.
	result := &models.ComparisonResult{
		LcsResults: []models.BenchmarkResult{models.NewFailedBenchmarkResult("lcs", "case")},
		BitResults: []models.BenchmarkResult{healthy},
	}
	harness.finalize(result)
	assert.Contains(t, result.Recommendation, "bit-diff engine is recommended")

	// And the mirror image must recommend LCS.
	result = &models.ComparisonResult{
		LcsResults: []models.BenchmarkResult{healthy},
		BitResults: []models.BenchmarkResult{models.NewFailedBenchmarkResult("bitdiff", "case")},
	}
	harness.finalize(result)
	assert.Contains(t, result.Recommendation, "LCS engine is recommended")
}

func TestFinalize_AttachesSystemMemoryContext(t *testing.T) {
	harness := newTestHarness(t)

	result := &models.ComparisonResult{}
	harness.finalize(result)

	// Best-effort sampling: zero when unavailable, otherwise used <= total.
	assert.GreaterOrEqual(t, result.SystemMemUsedMB, int64(0))
	assert.GreaterOrEqual(t, result.SystemMemTotalMB, result.SystemMemUsedMB)
}

func TestCrossEngineAgreement(t *testing.T) {
	itemA := models.DiffItem{Type: models.DiffTypeDeletion, Text: "brown"}
	itemB := models.DiffItem{Type: models.DiffTypeAddition, Text: "now"}
	itemC := models.DiffItem{Type: models.DiffTypeAddition, Text: "Now "}

	assert.Equal(t, 1.0, crossEngineAgreement(nil, nil))
	assert.Equal(t, 0.0, crossEngineAgreement([]models.DiffItem{itemA}, nil))
	assert.Equal(t, 1.0, crossEngineAgreement([]models.DiffItem{itemA, itemB}, []models.DiffItem{itemA, itemB}))

	// Matching is on type plus normalized text.
	assert.Equal(t, 1.0, crossEngineAgreement([]models.DiffItem{itemB}, []models.DiffItem{itemC}))

	// Partial overlap divided by the larger count.
	agreement := crossEngineAgreement([]models.DiffItem{itemA}, []models.DiffItem{itemA, itemB})
	assert.InDelta(t, 0.5, agreement, 1e-9)
}

func TestExpectedTypeCoverage(t *testing.T) {
	deletion := models.DiffItem{Type: models.DiffTypeDeletion, Text: "gone"}
	addition := models.DiffItem{Type: models.DiffTypeAddition, Text: "new"}

	assert.Equal(t, 1.0, expectedTypeCoverage(nil, nil))
	assert.Equal(t, 0.0, expectedTypeCoverage(nil, []models.DiffType{models.DiffTypeAddition}))

	full := expectedTypeCoverage(
		[]models.DiffItem{deletion, addition},
		[]models.DiffType{models.DiffTypeDeletion, models.DiffTypeAddition},
	)
	assert.InDelta(t, 1.0, full, 1e-9)

	half := expectedTypeCoverage(
		[]models.DiffItem{deletion, addition},
		[]models.DiffType{models.DiffTypeDeletion},
	)
	assert.InDelta(t, 0.5, half, 1e-9)
}

func TestAverageRuns_MeansAndRounding(t *testing.T) {
	runs := []runOutcome{
		{result: models.BenchmarkResult{Engine: "lcs", TestCase: "t", ComputationTimeMs: 2, MemoryDeltaBytes: 100, DiffCount: 3}},
		{result: models.BenchmarkResult{Engine: "lcs", TestCase: "t", ComputationTimeMs: 4, MemoryDeltaBytes: 300, DiffCount: 4}},
	}

	avg := averageRuns(runs, 0.75)

	assert.InDelta(t, 3.0, avg.ComputationTimeMs, 1e-9)
	assert.Equal(t, int64(200), avg.MemoryDeltaBytes)
	// 3.5 rounds to 4.
	assert.Equal(t, 4, avg.DiffCount)
	assert.InDelta(t, 0.75, avg.Accuracy, 1e-9)
}

func TestAverageRuns_FailurePropagates(t *testing.T) {
	runs := []runOutcome{
		{result: models.BenchmarkResult{Engine: "lcs", TestCase: "t", ComputationTimeMs: 2}},
		{result: models.NewFailedBenchmarkResult("lcs", "t")},
	}

	avg := averageRuns(runs, 0.5)

	assert.True(t, avg.Failed)
	assert.True(t, math.IsInf(avg.ComputationTimeMs, 1))
}
