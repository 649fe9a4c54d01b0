package differ

import (
	"fmt"

	"github.com/aleister1102/docdiff/internal/models"
)

// diffItemBuilder assembles DiffItems with deterministic IDs from a
// per-computation monotonic counter. A fresh builder is created for every
// Diff call so repeated runs over the same inputs produce identical output.
type diffItemBuilder struct {
	granularity models.Granularity
	sequence    int
	items       []models.DiffItem
}

func newDiffItemBuilder(granularity models.Granularity) *diffItemBuilder {
	return &diffItemBuilder{granularity: granularity}
}

// Append emits one item. Confidence is clamped by the scorer before it
// reaches this point; the ID encodes {granularity}-{type}-{sequence}.
func (ib *diffItemBuilder) Append(diffType models.DiffType, text string, originalPos, revisedPos int, confidence float64, context string) {
	ib.sequence++
	ib.items = append(ib.items, models.DiffItem{
		ID:          fmt.Sprintf("%s-%s-%d", ib.granularity, diffType, ib.sequence),
		Text:        text,
		OriginalPos: originalPos,
		RevisedPos:  revisedPos,
		Type:        diffType,
		Confidence:  confidence,
		Context:     context,
	})
}

// Items returns the accumulated items, never nil.
func (ib *diffItemBuilder) Items() []models.DiffItem {
	if ib.items == nil {
		return []models.DiffItem{}
	}
	return ib.items
}
