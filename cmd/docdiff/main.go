package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aleister1102/docdiff/internal/benchmark"
	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/differ"
	"github.com/aleister1102/docdiff/internal/logger"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	configPath := config.GetConfigPath(flags.GlobalConfigFile)
	cfg, err := config.LoadGlobalConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	registry, err := differ.NewEngineRegistryBuilder().
		WithDiffConfig(toDiffConfig(cfg.DiffConfig)).
		WithLogger(appLogger).
		Build()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to construct diff engines")
	}

	if flags.Benchmark {
		runBenchmark(flags, cfg, registry, appLogger)
		return
	}

	runDiff(flags, cfg, registry, appLogger)
}

// toDiffConfig maps the file-level diff configuration onto the engine config.
func toDiffConfig(cfg config.DiffConfig) differ.DiffConfig {
	diffCfg := differ.DefaultDiffConfig()
	if cfg.MinDiffLength > 0 {
		diffCfg.MinDiffLength = cfg.MinDiffLength
	}
	if cfg.MaxTextLength > 0 {
		diffCfg.MaxTextLength = cfg.MaxTextLength
	}
	if cfg.ContextRadius > 0 {
		diffCfg.ContextRadius = cfg.ContextRadius
	}
	diffCfg.EnableSemanticCleanup = cfg.EnableSemanticCleanup
	return diffCfg
}

// runDiff computes one diff between the two input files and prints the items
// as JSON.
func runDiff(flags AppFlags, cfg *config.GlobalConfig, registry *differ.EngineRegistry, appLogger zerolog.Logger) {
	original, revised := readInputs(flags, appLogger)

	granularityStr := cfg.DiffConfig.Granularity
	if flags.Granularity != "" {
		granularityStr = flags.Granularity
	}
	granularity, err := models.ParseGranularity(granularityStr)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid granularity")
	}

	engineStr := cfg.DiffConfig.DefaultEngine
	if flags.Engine != "" {
		engineStr = flags.Engine
	}
	engine, err := registry.Engine(differ.EngineKind(engineStr))
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid engine")
	}

	validator := differ.NewInputValidator(toDiffConfig(cfg.DiffConfig).MaxTextLength)
	validation := validator.ValidatePair(original, revised)
	for _, warning := range validation.Warnings {
		appLogger.Warn().Str("warning", warning).Msg("Input validation warning")
	}
	if !validation.IsValid {
		for _, msg := range validation.Errors {
			appLogger.Error().Str("error", msg).Msg("Input validation failed")
		}
		os.Exit(1)
	}

	items, err := engine.Diff(original, revised, granularity)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Diff computation failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to encode diff items")
	}
}

// runBenchmark runs the canned suite, or a Compare over the provided input
// files when both are given, and prints the markdown report.
func runBenchmark(flags AppFlags, cfg *config.GlobalConfig, registry *differ.EngineRegistry, appLogger zerolog.Logger) {
	harness, err := benchmark.NewHarnessBuilder().
		WithRegistry(registry).
		WithLogger(appLogger).
		Build()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to construct benchmark harness")
	}

	iterations := cfg.BenchmarkConfig.Iterations
	if flags.Iterations > 0 {
		iterations = flags.Iterations
	}

	var result *models.ComparisonResult
	var cases []models.TestCase
	if flags.OriginalFile != "" && flags.RevisedFile != "" {
		original, revised := readInputs(flags, appLogger)
		result, err = harness.Compare(original, revised, iterations)
	} else {
		cases = benchmark.DefaultTestCases()
		result, err = harness.RunSuite(cases, iterations)
	}
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Benchmark run failed")
	}

	if !cfg.BenchmarkConfig.IncludeExcerpts {
		cases = nil
	}
	if err := benchmark.NewReportWriter().Write(os.Stdout, result, cases); err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to write benchmark report")
	}
}

// readInputs loads the original and revised documents from disk.
func readInputs(flags AppFlags, appLogger zerolog.Logger) (string, string) {
	original, err := os.ReadFile(flags.OriginalFile)
	if err != nil {
		appLogger.Fatal().Err(err).Str("path", flags.OriginalFile).Msg("Failed to read original file")
	}
	revised, err := os.ReadFile(flags.RevisedFile)
	if err != nil {
		appLogger.Fatal().Err(err).Str("path", flags.RevisedFile).Msg("Failed to read revised file")
	}
	return string(original), string(revised)
}
