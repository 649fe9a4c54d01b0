package differ

// DiffConfig holds configuration for diff computation
type DiffConfig struct {
	// MinDiffLength is the minimum trimmed length for an emitted diff item.
	// Shorter fragments are dropped but still advance position counters.
	MinDiffLength int
	// MaxTextLength is the maximum accepted input length in characters.
	// Longer input is a validation error, never silently truncated.
	MaxTextLength int
	// ContextRadius is the number of neighboring tokens included on each
	// side of an item's context excerpt.
	ContextRadius int
	// EnableSemanticCleanup applies the semantic cleanup pass to the bit
	// diff engine's raw output, merging trivial edits into meaningful ones.
	EnableSemanticCleanup bool
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		MinDiffLength:         3,
		MaxTextLength:         1_000_000,
		ContextRadius:         2,
		EnableSemanticCleanup: true,
	}
}
