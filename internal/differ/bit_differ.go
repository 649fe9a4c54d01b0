package differ

import (
	"fmt"
	"strings"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/aleister1102/docdiff/internal/scorer"
	"github.com/aleister1102/docdiff/internal/tokenizer"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// BitDiffEngineName identifies the bit-diff engine in reports and logs.
const BitDiffEngineName = "bitdiff"

// BitDiffEngine delegates to the diff-match-patch character-level diff
// (longest common prefix/suffix bisection) and normalizes its output into
// the shared item schema. It trades the LCS engine's typo tolerance for raw
// speed on long near-duplicate text, at the cost of robustness to
// paraphrasing.
type BitDiffEngine struct {
	config    DiffConfig
	dmp       *diffmatchpatch.DiffMatchPatch
	tokenizer *tokenizer.Tokenizer
	scorer    *scorer.ConfidenceScorer
	logger    zerolog.Logger
}

// NewBitDiffEngine creates a new bit-diff engine
func NewBitDiffEngine(cfg DiffConfig, logger zerolog.Logger) *BitDiffEngine {
	return &BitDiffEngine{
		config:    cfg,
		dmp:       diffmatchpatch.New(),
		tokenizer: tokenizer.NewTokenizerBuilder().WithMinTokenLength(cfg.MinDiffLength).WithLogger(logger).Build(),
		scorer:    scorer.NewConfidenceScorer(),
		logger:    logger.With().Str("engine", BitDiffEngineName).Logger(),
	}
}

// Name returns the engine identifier
func (e *BitDiffEngine) Name() string {
	return BitDiffEngineName
}

// Diff tokenizes and rejoins both texts, runs the character-level diff with
// semantic cleanup, and converts the resulting fragments into DiffItems.
// Fragments shorter than the minimum length are skipped but still advance
// the position counters.
func (e *BitDiffEngine) Diff(original, revised string, granularity models.Granularity) ([]models.DiffItem, error) {
	if len(original) > e.config.MaxTextLength {
		return nil, errorwrapper.WrapError(errorwrapper.ErrInputTooLarge,
			fmt.Sprintf("original text is %d characters, limit %d", len(original), e.config.MaxTextLength))
	}
	if len(revised) > e.config.MaxTextLength {
		return nil, errorwrapper.WrapError(errorwrapper.ErrInputTooLarge,
			fmt.Sprintf("revised text is %d characters, limit %d", len(revised), e.config.MaxTextLength))
	}

	origText := tokenizer.Rejoin(e.tokenizer.Tokenize(original, granularity))
	revText := tokenizer.Rejoin(e.tokenizer.Tokenize(revised, granularity))

	diffs := e.dmp.DiffMain(origText, revText, false)
	if e.config.EnableSemanticCleanup {
		diffs = e.dmp.DiffCleanupSemantic(diffs)
		diffs = e.dmp.DiffCleanupMerge(diffs)
	}

	items := e.convertDiffs(diffs, granularity)

	e.logger.Debug().
		Str("granularity", string(granularity)).
		Int("raw_fragments", len(diffs)).
		Int("diff_items", len(items)).
		Msg("Computed bit diff")

	return items, nil
}

// convertDiffs maps diff-match-patch operations onto the item schema:
// delete fragments become deletions, insert fragments become additions,
// equal fragments only advance the position counters. Context is the raw
// fragment text; unlike the LCS engine there is no neighbor lookup.
func (e *BitDiffEngine) convertDiffs(diffs []diffmatchpatch.Diff, granularity models.Granularity) []models.DiffItem {
	builder := newDiffItemBuilder(granularity)
	origPos, revPos := 0, 0

	for _, fragment := range diffs {
		text := strings.TrimSpace(fragment.Text)
		switch fragment.Type {
		case diffmatchpatch.DiffEqual:
			origPos += len(fragment.Text)
			revPos += len(fragment.Text)
		case diffmatchpatch.DiffDelete:
			if len(text) >= e.config.MinDiffLength {
				builder.Append(models.DiffTypeDeletion, text, origPos, revPos,
					e.scorer.Score(text, granularity), text)
			}
			origPos += len(fragment.Text)
		case diffmatchpatch.DiffInsert:
			if len(text) >= e.config.MinDiffLength {
				builder.Append(models.DiffTypeAddition, text, origPos, revPos,
					e.scorer.Score(text, granularity), text)
			}
			revPos += len(fragment.Text)
		}
	}

	return builder.Items()
}
