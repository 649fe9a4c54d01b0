package differ

import (
	"fmt"
	"strings"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/aleister1102/docdiff/internal/scorer"
	"github.com/aleister1102/docdiff/internal/similarity"
	"github.com/aleister1102/docdiff/internal/tokenizer"
	"github.com/rs/zerolog"
)

// LcsDiffEngineName identifies the LCS engine in reports and logs.
const LcsDiffEngineName = "lcs"

// LcsDiffEngine computes diffs via a classic longest-common-subsequence
// dynamic program over tokens, using typo-tolerant similarity as the match
// predicate instead of strict equality.
//
// Time and space are O(m*n) in the token counts for the DP table; this is
// the dominant cost and the reason inputs far beyond a few thousand tokens
// become slow. Exact backtracking requires the full table, so the usual
// two-row space optimization does not apply without Hirschberg-style
// recovery.
type LcsDiffEngine struct {
	config    DiffConfig
	tokenizer *tokenizer.Tokenizer
	matcher   *similarity.Matcher
	scorer    *scorer.ConfidenceScorer
	logger    zerolog.Logger
}

// NewLcsDiffEngine creates a new LCS diff engine
func NewLcsDiffEngine(cfg DiffConfig, logger zerolog.Logger) *LcsDiffEngine {
	return &LcsDiffEngine{
		config:    cfg,
		tokenizer: tokenizer.NewTokenizerBuilder().WithMinTokenLength(cfg.MinDiffLength).WithLogger(logger).Build(),
		matcher:   similarity.NewMatcher(),
		scorer:    scorer.NewConfidenceScorer(),
		logger:    logger.With().Str("engine", LcsDiffEngineName).Logger(),
	}
}

// Name returns the engine identifier
func (e *LcsDiffEngine) Name() string {
	return LcsDiffEngineName
}

// editOp is one step of the backtracked edit script.
type editOp struct {
	kind    models.DiffType
	origIdx int
	revIdx  int
}

// Diff computes the addition/deletion items converting original into revised.
// Empty inputs yield an empty item list; over-length input is a validation
// error.
func (e *LcsDiffEngine) Diff(original, revised string, granularity models.Granularity) ([]models.DiffItem, error) {
	if err := e.validateLength(original, "original"); err != nil {
		return nil, err
	}
	if err := e.validateLength(revised, "revised"); err != nil {
		return nil, err
	}

	origTokens := e.tokenizer.Tokenize(original, granularity)
	revTokens := e.tokenizer.Tokenize(revised, granularity)

	ops := e.backtrack(origTokens, revTokens)

	items := e.buildItems(ops, origTokens, revTokens, granularity)

	e.logger.Debug().
		Str("granularity", string(granularity)).
		Int("original_tokens", len(origTokens)).
		Int("revised_tokens", len(revTokens)).
		Int("diff_items", len(items)).
		Msg("Computed LCS diff")

	return items, nil
}

// validateLength enforces the maximum accepted input length.
func (e *LcsDiffEngine) validateLength(text, field string) error {
	if len(text) > e.config.MaxTextLength {
		return errorwrapper.WrapError(errorwrapper.ErrInputTooLarge,
			fmt.Sprintf("%s text is %d characters, limit %d", field, len(text), e.config.MaxTextLength))
	}
	return nil
}

// backtrack fills the DP table and recovers the edit script. The table is a
// flat slice to keep it a single allocation. Backtracking walks (m,n) back
// to (0,0); the resulting script is reversed before returning so callers see
// left-to-right order.
func (e *LcsDiffEngine) backtrack(origTokens, revTokens []tokenizer.Token) []editOp {
	m, n := len(origTokens), len(revTokens)
	if m == 0 && n == 0 {
		return nil
	}

	stride := n + 1
	table := make([]int, (m+1)*stride)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if e.matcher.IsSimilar(origTokens[i-1].Content, revTokens[j-1].Content) {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] >= table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	ops := make([]editOp, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && e.matcher.IsSimilar(origTokens[i-1].Content, revTokens[j-1].Content):
			ops = append(ops, editOp{kind: models.DiffTypeEqual, origIdx: i - 1, revIdx: j - 1})
			i--
			j--
		// Ties break toward deletion. This asymmetry is observable in the
		// output ordering and must not change without re-deriving fixtures.
		case i > 0 && (j == 0 || table[(i-1)*stride+j] >= table[i*stride+j-1]):
			ops = append(ops, editOp{kind: models.DiffTypeDeletion, origIdx: i - 1})
			i--
		default:
			ops = append(ops, editOp{kind: models.DiffTypeAddition, revIdx: j - 1})
			j--
		}
	}

	for left, right := 0, len(ops)-1; left < right; left, right = left+1, right-1 {
		ops[left], ops[right] = ops[right], ops[left]
	}

	return ops
}

// buildItems walks the edit script left to right, maintaining character
// offsets into both texts. Fragments below the minimum length are dropped
// silently but still advance the position counters so offsets stay exact.
func (e *LcsDiffEngine) buildItems(ops []editOp, origTokens, revTokens []tokenizer.Token, granularity models.Granularity) []models.DiffItem {
	builder := newDiffItemBuilder(granularity)
	origPos, revPos := 0, 0

	for _, op := range ops {
		switch op.kind {
		case models.DiffTypeEqual:
			origPos += origTokens[op.origIdx].Length
			revPos += revTokens[op.revIdx].Length
		case models.DiffTypeDeletion:
			token := origTokens[op.origIdx]
			if text := strings.TrimSpace(token.Content); len(text) >= e.config.MinDiffLength {
				builder.Append(models.DiffTypeDeletion, text, origPos, revPos,
					e.scorer.Score(text, granularity),
					e.neighborContext(origTokens, op.origIdx))
			}
			origPos += token.Length
		case models.DiffTypeAddition:
			token := revTokens[op.revIdx]
			if text := strings.TrimSpace(token.Content); len(text) >= e.config.MinDiffLength {
				builder.Append(models.DiffTypeAddition, text, origPos, revPos,
					e.scorer.Score(text, granularity),
					e.neighborContext(revTokens, op.revIdx))
			}
			revPos += token.Length
		}
	}

	return builder.Items()
}

// neighborContext joins the changed token with up to ContextRadius
// non-whitespace neighbors per side, from the side the change came from.
// The window is sized over content tokens, not raw tokens, so word-mode
// whitespace runs do not eat into it.
func (e *LcsDiffEngine) neighborContext(tokens []tokenizer.Token, idx int) string {
	radius := e.config.ContextRadius

	var before []string
	for i := idx - 1; i >= 0 && len(before) < radius; i-- {
		if tokens[i].Content == "" {
			continue
		}
		before = append(before, tokens[i].Content)
	}

	parts := make([]string, 0, 2*radius+1)
	for i := len(before) - 1; i >= 0; i-- {
		parts = append(parts, before[i])
	}
	if tokens[idx].Content != "" {
		parts = append(parts, tokens[idx].Content)
	}

	after := 0
	for i := idx + 1; i < len(tokens) && after < radius; i++ {
		if tokens[i].Content == "" {
			continue
		}
		parts = append(parts, tokens[i].Content)
		after++
	}

	return strings.Join(parts, " ")
}
