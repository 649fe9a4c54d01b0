package models

import "math"

// BenchmarkResult holds the measured outcome of one engine run over one test case.
type BenchmarkResult struct {
	Engine            string  `json:"engine"`
	TestCase          string  `json:"test_case"`
	ComputationTimeMs float64 `json:"computation_time_ms"`
	MemoryDeltaBytes  int64   `json:"memory_delta_bytes"`
	DiffCount         int     `json:"diff_count"`
	Accuracy          float64 `json:"accuracy"`
	// Failed marks a run where the engine returned an error or panicked.
	// Failed results carry ComputationTimeMs=+Inf, DiffCount=0, Accuracy=0.
	// The flag exists because +Inf does not survive JSON encoding.
	Failed bool `json:"failed,omitempty"`
}

// NewFailedBenchmarkResult builds the sentinel result recorded when an engine
// fails during a benchmark run instead of aborting the suite.
func NewFailedBenchmarkResult(engine, testCase string) BenchmarkResult {
	return BenchmarkResult{
		Engine:            engine,
		TestCase:          testCase,
		ComputationTimeMs: math.Inf(1),
		DiffCount:         0,
		Accuracy:          0,
		Failed:            true,
	}
}

// ComparisonResult aggregates both engines' benchmark runs plus the harness verdict.
type ComparisonResult struct {
	LcsResults []BenchmarkResult `json:"lcs_results"`
	BitResults []BenchmarkResult `json:"bit_results"`
	// Recommendation is a natural-language summary naming the suggested
	// default engine. It is a reporting format, not a strict protocol.
	Recommendation string `json:"recommendation"`
	// PerformanceDifference is the absolute gap between the two engines'
	// weighted scores.
	PerformanceDifference float64 `json:"performance_difference"`
	// SystemMemUsedMB and SystemMemTotalMB record system memory at the end of
	// the run. They are advisory environment context for the report: numbers
	// measured on a loaded machine deserve less trust. Zero means the sample
	// was unavailable.
	SystemMemUsedMB  int64 `json:"system_mem_used_mb"`
	SystemMemTotalMB int64 `json:"system_mem_total_mb"`
}

// TestCase is one named input pair for the benchmark corpus. ExpectedTypes
// lists the diff types a correct engine is expected to emit for the pair.
type TestCase struct {
	Name          string     `json:"name"`
	Original      string     `json:"original"`
	Revised       string     `json:"revised"`
	ExpectedTypes []DiffType `json:"expected_types"`
}
