package config

// BenchmarkConfig defines configuration for the benchmark harness
type BenchmarkConfig struct {
	Iterations      int  `json:"iterations,omitempty" yaml:"iterations,omitempty" validate:"omitempty,min=1"`
	IncludeExcerpts bool `json:"include_excerpts" yaml:"include_excerpts"`
}

// NewDefaultBenchmarkConfig creates default benchmark configuration
func NewDefaultBenchmarkConfig() BenchmarkConfig {
	return BenchmarkConfig{
		Iterations:      DefaultBenchmarkIterations,
		IncludeExcerpts: true,
	}
}
