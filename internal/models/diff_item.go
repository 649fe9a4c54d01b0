package models

import (
	"fmt"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
)

// Granularity defines the unit of comparison for tokenization and diffing.
type Granularity string

const (
	// GranularityWord compares texts word by word.
	GranularityWord Granularity = "word"
	// GranularitySentence compares texts sentence by sentence.
	GranularitySentence Granularity = "sentence"
)

// ParseGranularity converts a string into a Granularity value.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityWord, GranularitySentence:
		return Granularity(s), nil
	default:
		return "", errorwrapper.WrapError(errorwrapper.ErrInvalidInput, fmt.Sprintf("unknown granularity: %q", s))
	}
}

// DiffType defines the kind of change a DiffItem represents.
type DiffType string

const (
	// DiffTypeAddition indicates text present only in the revised version.
	DiffTypeAddition DiffType = "addition"
	// DiffTypeDeletion indicates text present only in the original version.
	DiffTypeDeletion DiffType = "deletion"
	// DiffTypeModification is applied by downstream consumers pairing adjacent
	// addition/deletion items. The engines themselves never emit it.
	DiffTypeModification DiffType = "modification"
	// DiffTypeEqual indicates unchanged context. The engines skip equal
	// segments and never emit it either, but the value is part of the wire
	// contract shared with downstream analysis.
	DiffTypeEqual DiffType = "equal"
)

// DiffItem is the atomic unit of diff output. Items are created fresh per
// computation, immutable once emitted, and owned by the caller.
type DiffItem struct {
	// ID is unique within one computation and encodes
	// {granularity}-{type}-{sequence} from a per-call monotonic counter,
	// so repeated runs over the same inputs produce identical IDs.
	ID string `json:"id"`
	// Text is the trimmed token/segment content, never empty.
	Text string `json:"text"`
	// OriginalPos is the character offset into the original text at the point
	// the item occurs. Offsets are monotonically non-decreasing across the
	// emitted sequence.
	OriginalPos int `json:"originalPos"`
	// RevisedPos is the character offset into the revised text.
	RevisedPos int `json:"revisedPos"`
	// Type is one of addition, deletion, modification, equal.
	Type DiffType `json:"type"`
	// Confidence is a heuristic quality signal in [0,1], not a probability.
	Confidence float64 `json:"confidence"`
	// Context is a short surrounding-text excerpt for human review.
	Context string `json:"context"`
}
