package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Diff Defaults
	DefaultDiffGranularity   = "word"
	DefaultDiffMinLength     = 3
	DefaultDiffMaxTextLength = 1_000_000
	DefaultDiffContextRadius = 2
	DefaultDiffEngine        = "lcs"

	// Benchmark Defaults
	DefaultBenchmarkIterations = 1
)
