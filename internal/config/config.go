package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	DiffConfig      DiffConfig      `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	BenchmarkConfig BenchmarkConfig `json:"benchmark_config,omitempty" yaml:"benchmark_config,omitempty"`
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:      NewDefaultDiffConfig(),
		BenchmarkConfig: NewDefaultBenchmarkConfig(),
		LogConfig:       NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads configuration from the given path, starting from
// defaults, and validates the result. An empty path returns validated
// defaults.
func LoadGlobalConfig(configPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to read config file '"+configPath+"'")
		}
		if err := parseConfigContent(data, configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "config validation failed")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
