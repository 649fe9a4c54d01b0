package tokenizer

import (
	"strings"
	"testing"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizer_Tokenize_EmptyInput(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	assert.Empty(t, tok.Tokenize("", models.GranularityWord))
	assert.Empty(t, tok.Tokenize("", models.GranularitySentence))
	assert.Empty(t, tok.Tokenize("   \t\n  ", models.GranularityWord))
}

func TestTokenizer_Preprocess(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "The Quick FOX", "the quick fox"},
		{"collapses whitespace", "a  b\t\tc\n\nd", "a b c d"},
		{"normalizes line endings", "a\r\nb\rc", "a b c"},
		{"strips non-whitelisted characters", "a@b #c$ d%", "ab c d"},
		{"keeps sentence punctuation", "wait... really?! (yes)", "wait... really?! (yes)"},
		{"trims edges", "  hello  ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tok.Preprocess(tt.input))
		})
	}
}

func TestTokenizer_Tokenize_WordMode(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	tokens := tok.Tokenize("The quick brown fox", models.GranularityWord)

	// Words and whitespace runs alternate so offsets stay reconstructable.
	require.Len(t, tokens, 7)
	assert.Equal(t, "the", tokens[0].Content)
	assert.Equal(t, "", tokens[1].Content)
	assert.Equal(t, 1, tokens[1].Length)
	assert.Equal(t, "quick", tokens[2].Content)
	assert.Equal(t, "fox", tokens[6].Content)

	total := 0
	for _, token := range tokens {
		total += token.Length
	}
	assert.Equal(t, len("the quick brown fox"), total)
}

func TestTokenizer_Tokenize_WordMode_ShedsEdgePunctuation(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	tokens := tok.Tokenize("jumps. now!", models.GranularityWord)

	require.Len(t, tokens, 3)
	assert.Equal(t, "jumps", tokens[0].Content)
	assert.Equal(t, 6, tokens[0].Length)
	assert.Equal(t, "now", tokens[2].Content)
	assert.Equal(t, 4, tokens[2].Length)
}

func TestTokenizer_Tokenize_SentenceMode(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	text := "The methodology was sound. The results were significant! Was the analysis complete?"
	tokens := tok.Tokenize(text, models.GranularitySentence)

	require.Len(t, tokens, 3)
	assert.Equal(t, "the methodology was sound.", tokens[0].Content)
	assert.Equal(t, "the results were significant!", tokens[1].Content)
	assert.Equal(t, "was the analysis complete?", tokens[2].Content)
}

func TestTokenizer_Tokenize_SentenceMode_DropsBoilerplate(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	text := "The experiment succeeded. Figure 2. See the appendix for details. 42. The conclusion follows."
	tokens := tok.Tokenize(text, models.GranularitySentence)

	contents := make([]string, 0, len(tokens))
	for _, token := range tokens {
		contents = append(contents, token.Content)
	}
	joined := strings.Join(contents, " | ")

	assert.NotContains(t, joined, "figure 2")
	assert.NotContains(t, joined, "see the appendix")
	assert.NotContains(t, joined, "42")
	assert.Contains(t, joined, "the experiment succeeded.")
	assert.Contains(t, joined, "the conclusion follows.")
}

func TestTokenizer_Tokenize_SentenceMode_LengthsCoverText(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	text := "First sentence here. Figure 3. Second sentence there. Third one closes it."
	processed := tok.Preprocess(text)
	tokens := tok.Tokenize(text, models.GranularitySentence)

	// Dropped boilerplate folds its length into neighbors so positions
	// derived from token lengths never exceed the text length.
	total := 0
	for _, token := range tokens {
		total += token.Length
	}
	assert.Equal(t, len(processed), total)
}

func TestRejoin(t *testing.T) {
	tok := NewTokenizerBuilder().Build()

	tokens := tok.Tokenize("The quick  brown   fox", models.GranularityWord)
	assert.Equal(t, "the quick brown fox", Rejoin(tokens))

	assert.Equal(t, "", Rejoin(nil))
}
