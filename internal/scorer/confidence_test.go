package scorer

import (
	"strings"
	"testing"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestConfidenceScorer_Score_Base(t *testing.T) {
	cs := NewConfidenceScorer()

	assert.InDelta(t, 0.5, cs.Score("short", models.GranularityWord), 1e-9)
	assert.InDelta(t, 0.5, cs.Score("brief text here", models.GranularitySentence), 1e-9)
}

func TestConfidenceScorer_Score_LengthBonus(t *testing.T) {
	cs := NewConfidenceScorer()

	assert.InDelta(t, 0.6, cs.Score("extraordinary", models.GranularityWord), 1e-9)

	longSentence := "the weather remained pleasant throughout the entire afternoon today"
	assert.InDelta(t, 0.7, cs.Score(longSentence, models.GranularitySentence), 1e-9)
}

func TestConfidenceScorer_Score_KeywordBonus(t *testing.T) {
	cs := NewConfidenceScorer()

	// One keyword, word granularity, length 8 <= 10 so no length bonus.
	assert.InDelta(t, 0.6, cs.Score("analysis", models.GranularityWord), 1e-9)

	// Four keywords cap the bonus at +0.3; length 30 > 10 adds +0.1.
	assert.InDelta(t, 0.9, cs.Score("data results analysis research", models.GranularityWord), 1e-9)
}

func TestConfidenceScorer_Score_ClampedToOne(t *testing.T) {
	cs := NewConfidenceScorer()

	text := "the hypothesis, methodology, analysis and conclusion were significant " +
		"according to the data, results, discussion, literature and research"
	score := cs.Score(text, models.GranularitySentence)

	assert.LessOrEqual(t, score, 1.0)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestConfidenceScorer_Score_AlwaysInBounds(t *testing.T) {
	cs := NewConfidenceScorer()

	inputs := []string{"", "a", "research", strings.Repeat("data analysis ", 50)}
	for _, input := range inputs {
		for _, granularity := range []models.Granularity{models.GranularityWord, models.GranularitySentence} {
			score := cs.Score(input, granularity)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestContainsDomainKeyword(t *testing.T) {
	assert.True(t, ContainsDomainKeyword("the RESEARCH was thorough"))
	assert.True(t, ContainsDomainKeyword("we present new data here"))
	assert.False(t, ContainsDomainKeyword("a plain sentence about nothing"))
	assert.False(t, ContainsDomainKeyword(""))
}
