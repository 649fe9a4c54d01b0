package similarity

import "strings"

// Design constants for the typo-tolerant match rule. These are deliberately
// not runtime-tunable: the LCS engine's output fixtures depend on them.
const (
	// similarityThreshold is the minimum average per-word score for two
	// token strings to count as similar. The comparison is strict.
	similarityThreshold = 0.85
	// wordMatchScore is the per-word score for an exact word match.
	wordMatchScore = 1.0
	// typoMatchScore is the per-word score for a near-miss (typo) match.
	typoMatchScore = 0.8
	// typoMaxWordLength caps the word length at which the typo rule applies.
	typoMaxWordLength = 6
	// typoMaxEditDistance is the Levenshtein distance tolerated as a typo.
	typoMaxEditDistance = 1
	// typoMaxLengthDiff is the absolute length difference tolerated as a typo.
	typoMaxLengthDiff = 2
)

// Matcher decides whether two tokens are "the same" despite minor typos.
// It is stateless and safe for concurrent use.
type Matcher struct{}

// NewMatcher creates a new Matcher instance
func NewMatcher() *Matcher {
	return &Matcher{}
}

// IsSimilar reports whether a and b should be treated as the same token.
// Exact matches (after trimming) are similar. Otherwise both strings are
// split into words, each word pair is scored (exact = 1.0, typo = 0.8,
// else 0), and the average must exceed the similarity threshold.
func (m *Matcher) IsSimilar(a, b string) bool {
	if a == b {
		return true
	}

	ta, tb := strings.TrimSpace(a), strings.TrimSpace(b)
	if ta == tb {
		return true
	}

	wordsA := strings.Fields(ta)
	wordsB := strings.Fields(tb)
	if len(wordsA) != len(wordsB) {
		return false
	}
	if len(wordsA) == 0 {
		return true
	}

	total := 0.0
	for i := range wordsA {
		total += scoreWordPair(wordsA[i], wordsB[i])
	}

	return total/float64(len(wordsA)) > similarityThreshold
}

// scoreWordPair rates a single word pair for the averaged similarity score.
func scoreWordPair(a, b string) float64 {
	if a == b {
		return wordMatchScore
	}
	if isTypoMatch(a, b) {
		return typoMatchScore
	}
	return 0
}

// isTypoMatch applies the typo rule: both words short enough, lengths within
// bounds, and unweighted edit distance within tolerance.
func isTypoMatch(a, b string) bool {
	if len(a) > typoMaxWordLength || len(b) > typoMaxWordLength {
		return false
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > typoMaxLengthDiff {
		return false
	}
	return levenshtein(a, b) <= typoMaxEditDistance
}

// levenshtein computes the unweighted edit distance between a and b using
// two-row dynamic programming, O(min(len(a), len(b))) space.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) < len(b) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
