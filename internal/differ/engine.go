package differ

import (
	"fmt"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
)

// DiffEngine computes structured diffs between two document versions.
// Implementations are stateless per call and reentrant: all working state
// (DP tables, token slices) is locally owned and discarded on return.
type DiffEngine interface {
	// Name returns the engine's stable identifier for reports and logs.
	Name() string
	// Diff computes the list of additions and deletions converting original
	// into revised at the given granularity. Items are emitted in
	// left-to-right order with monotonically non-decreasing positions.
	Diff(original, revised string, granularity models.Granularity) ([]models.DiffItem, error)
}

// EngineKind identifies a registered diff engine implementation.
type EngineKind string

const (
	// EngineLCS is the custom LCS engine with typo-tolerant token matching.
	EngineLCS EngineKind = "lcs"
	// EngineBit is the wrapper around the diff-match-patch character diff.
	EngineBit EngineKind = "bitdiff"
)

// EngineRegistry maps engine kinds to constructed engine instances. Callers
// own the registry and its engines; there is no process-wide shared state.
type EngineRegistry struct {
	engines map[EngineKind]DiffEngine
	logger  zerolog.Logger
}

// EngineRegistryBuilder provides a fluent interface for creating EngineRegistry
type EngineRegistryBuilder struct {
	config DiffConfig
	logger zerolog.Logger
}

// NewEngineRegistryBuilder creates a new builder with default configuration
func NewEngineRegistryBuilder() *EngineRegistryBuilder {
	return &EngineRegistryBuilder{
		config: DefaultDiffConfig(),
		logger: zerolog.Nop(),
	}
}

// WithDiffConfig sets the diff configuration shared by both engines
func (b *EngineRegistryBuilder) WithDiffConfig(cfg DiffConfig) *EngineRegistryBuilder {
	b.config = cfg
	return b
}

// WithLogger sets the logger instance
func (b *EngineRegistryBuilder) WithLogger(logger zerolog.Logger) *EngineRegistryBuilder {
	b.logger = logger
	return b
}

// Build constructs both engines and the registry dispatching to them
func (b *EngineRegistryBuilder) Build() (*EngineRegistry, error) {
	if b.config.MinDiffLength <= 0 {
		return nil, errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration,
			fmt.Sprintf("minimum diff length must be positive, got %d", b.config.MinDiffLength))
	}
	if b.config.MaxTextLength <= 0 {
		return nil, errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration,
			fmt.Sprintf("maximum text length must be positive, got %d", b.config.MaxTextLength))
	}

	lcs := NewLcsDiffEngine(b.config, b.logger)
	bit := NewBitDiffEngine(b.config, b.logger)

	return &EngineRegistry{
		engines: map[EngineKind]DiffEngine{
			EngineLCS: lcs,
			EngineBit: bit,
		},
		logger: b.logger,
	}, nil
}

// Engine returns the engine registered for the given kind.
func (r *EngineRegistry) Engine(kind EngineKind) (DiffEngine, error) {
	engine, exists := r.engines[kind]
	if !exists {
		return nil, errorwrapper.WrapError(errorwrapper.ErrUnknownEngine, string(kind))
	}
	return engine, nil
}

// Engines returns all registered engines in a stable order (LCS first).
func (r *EngineRegistry) Engines() []DiffEngine {
	return []DiffEngine{r.engines[EngineLCS], r.engines[EngineBit]}
}
