package config

// DiffConfig defines configuration for diff computation
type DiffConfig struct {
	Granularity           string `json:"granularity,omitempty" yaml:"granularity,omitempty" validate:"omitempty,granularity"`
	MinDiffLength         int    `json:"min_diff_length,omitempty" yaml:"min_diff_length,omitempty" validate:"omitempty,min=1"`
	MaxTextLength         int    `json:"max_text_length,omitempty" yaml:"max_text_length,omitempty" validate:"omitempty,min=1"`
	ContextRadius         int    `json:"context_radius,omitempty" yaml:"context_radius,omitempty" validate:"omitempty,min=0"`
	DefaultEngine         string `json:"default_engine,omitempty" yaml:"default_engine,omitempty" validate:"omitempty,diffengine"`
	EnableSemanticCleanup bool   `json:"enable_semantic_cleanup" yaml:"enable_semantic_cleanup"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		Granularity:           DefaultDiffGranularity,
		MinDiffLength:         DefaultDiffMinLength,
		MaxTextLength:         DefaultDiffMaxTextLength,
		ContextRadius:         DefaultDiffContextRadius,
		DefaultEngine:         DefaultDiffEngine,
		EnableSemanticCleanup: true,
	}
}
