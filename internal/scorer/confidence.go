package scorer

import (
	"strings"

	"github.com/aleister1102/docdiff/internal/models"
)

// Heuristic weights for the shared confidence formula. Confidence is a
// quality signal for human review, not a probability.
const (
	baseConfidence     = 0.5
	longSentenceBonus  = 0.2
	longWordBonus      = 0.1
	longSentenceLength = 50
	longWordLength     = 10
	keywordBonus       = 0.1
	maxKeywordBonus    = 0.3
	maxConfidence      = 1.0
	minConfidence      = 0.0
)

// academicKeywords is the fixed list of terms whose presence raises the
// confidence of a diff item.
var academicKeywords = []string{
	"hypothesis", "methodology", "analysis", "conclusion", "significant",
	"data", "results", "discussion", "literature", "research",
}

// ConfidenceScorer computes the heuristic confidence score shared by both
// diff engines. It is stateless and safe for concurrent use.
type ConfidenceScorer struct{}

// NewConfidenceScorer creates a new ConfidenceScorer instance
func NewConfidenceScorer() *ConfidenceScorer {
	return &ConfidenceScorer{}
}

// Score rates a diff fragment: base 0.5, a length bonus depending on
// granularity, and up to +0.3 for academic keyword hits. The result is
// clamped to [0,1].
func (cs *ConfidenceScorer) Score(text string, granularity models.Granularity) float64 {
	confidence := baseConfidence

	if granularity == models.GranularitySentence && len(text) > longSentenceLength {
		confidence += longSentenceBonus
	} else if granularity == models.GranularityWord && len(text) > longWordLength {
		confidence += longWordBonus
	}

	lowered := strings.ToLower(text)
	bonus := 0.0
	for _, keyword := range academicKeywords {
		if strings.Contains(lowered, keyword) {
			bonus += keywordBonus
			if bonus >= maxKeywordBonus {
				bonus = maxKeywordBonus
				break
			}
		}
	}
	confidence += bonus

	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	if confidence < minConfidence {
		confidence = minConfidence
	}

	return confidence
}

// ContainsDomainKeyword reports whether text mentions any of the academic
// keywords. The validation surface uses it to warn about non-academic input.
func ContainsDomainKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range academicKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
