package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	OriginalFile     string
	RevisedFile      string
	Granularity      string
	Engine           string
	GlobalConfigFile string
	Benchmark        bool
	Iterations       int
}

func ParseFlags() AppFlags {
	originalFile := flag.String("original-file", "", "Path to a text file holding the original document version.")
	originalFileAlias := flag.String("o", "", "Alias for -original-file")

	revisedFile := flag.String("revised-file", "", "Path to a text file holding the revised document version.")
	revisedFileAlias := flag.String("r", "", "Alias for -revised-file")

	granularityFlag := flag.String("granularity", "", "Unit of comparison: word or sentence (overrides config file if set)")
	granularityFlagAlias := flag.String("g", "", "Alias for -granularity")

	engineFlag := flag.String("engine", "", "Diff engine to use: lcs or bitdiff (overrides config file if set)")
	engineFlagAlias := flag.String("e", "", "Alias for -engine")

	globalConfigFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("gc", "", "Alias for -globalconfig")

	benchmarkFlag := flag.Bool("benchmark", false, "Run the benchmark suite over both engines instead of a single diff")
	benchmarkFlagAlias := flag.Bool("b", false, "Alias for -benchmark")

	iterationsFlag := flag.Int("iterations", 0, "Number of benchmark iterations per engine and test case (overrides config file if set)")
	iterationsFlagAlias := flag.Int("n", 0, "Alias for -iterations")

	flag.Parse()

	flags := AppFlags{}

	if *originalFile != "" {
		flags.OriginalFile = *originalFile
	} else if *originalFileAlias != "" {
		flags.OriginalFile = *originalFileAlias
	}

	if *revisedFile != "" {
		flags.RevisedFile = *revisedFile
	} else if *revisedFileAlias != "" {
		flags.RevisedFile = *revisedFileAlias
	}

	if *granularityFlag != "" {
		flags.Granularity = *granularityFlag
	} else if *granularityFlagAlias != "" {
		flags.Granularity = *granularityFlagAlias
	}

	if *engineFlag != "" {
		flags.Engine = *engineFlag
	} else if *engineFlagAlias != "" {
		flags.Engine = *engineFlagAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	flags.Benchmark = *benchmarkFlag || *benchmarkFlagAlias

	if *iterationsFlag > 0 {
		flags.Iterations = *iterationsFlag
	} else if *iterationsFlagAlias > 0 {
		flags.Iterations = *iterationsFlagAlias
	}

	if !flags.Benchmark && (flags.OriginalFile == "" || flags.RevisedFile == "") {
		fmt.Fprintln(os.Stderr, "[FATAL] -original-file and -revised-file are required unless -benchmark is set")
		os.Exit(1)
	}

	return flags
}
