package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
)

// Token is one comparison unit produced by tokenization. Content is the
// trimmed, preprocessed text of the unit; Length is the unit's raw length in
// the preprocessed text, so that summing lengths keeps character offsets
// exact during reconstruction.
type Token struct {
	Content string
	Length  int
}

// Tokenizer splits preprocessed text into word or sentence units.
// Word mode preserves whitespace runs as their own tokens; sentence mode
// drops boilerplate segments (captions, citation leads, numeric-only lines).
type Tokenizer struct {
	minTokenLength int
	logger         zerolog.Logger
}

// Boilerplate patterns filtered out of sentence tokenization. Matching runs
// against preprocessed (lowercased) text.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?$`),
	regexp.MustCompile(`^(figure|fig\.?|table)\s*\d+`),
	regexp.MustCompile(`^(see|cf\.|e\.g\.|i\.e\.)\s`),
	regexp.MustCompile(`^[a-z]$`),
}

// TokenizerBuilder provides a fluent interface for creating Tokenizer
type TokenizerBuilder struct {
	minTokenLength int
	logger         zerolog.Logger
}

// NewTokenizerBuilder creates a new builder with default settings
func NewTokenizerBuilder() *TokenizerBuilder {
	return &TokenizerBuilder{
		minTokenLength: DefaultMinTokenLength,
		logger:         zerolog.Nop(),
	}
}

// WithMinTokenLength sets the minimum meaningful token length
func (b *TokenizerBuilder) WithMinTokenLength(length int) *TokenizerBuilder {
	b.minTokenLength = length
	return b
}

// WithLogger sets the logger instance
func (b *TokenizerBuilder) WithLogger(logger zerolog.Logger) *TokenizerBuilder {
	b.logger = logger
	return b
}

// Build creates a new Tokenizer instance
func (b *TokenizerBuilder) Build() *Tokenizer {
	minLength := b.minTokenLength
	if minLength <= 0 {
		minLength = DefaultMinTokenLength
	}
	return &Tokenizer{
		minTokenLength: minLength,
		logger:         b.logger.With().Str("component", "tokenizer").Logger(),
	}
}

// DefaultMinTokenLength is the minimum meaningful segment length; shorter
// sentence segments are dropped during tokenization and shorter diff
// fragments are filtered by the engines.
const DefaultMinTokenLength = 3

// Tokenize splits raw text into tokens at the requested granularity.
// Empty input yields an empty slice, never an error.
func (t *Tokenizer) Tokenize(text string, granularity models.Granularity) []Token {
	processed := t.Preprocess(text)
	if processed == "" {
		return []Token{}
	}

	var tokens []Token
	if granularity == models.GranularitySentence {
		tokens = t.tokenizeSentences(processed)
	} else {
		tokens = t.tokenizeWords(processed)
	}

	t.logger.Debug().
		Str("granularity", string(granularity)).
		Int("input_length", len(text)).
		Int("token_count", len(tokens)).
		Msg("Tokenized text")

	return tokens
}

// Preprocess normalizes text before tokenization: line endings become '\n',
// characters outside the word/sentence punctuation whitelist are stripped,
// whitespace runs collapse to a single space, and the result is lowercased.
// Comparison downstream is therefore case-insensitive; original casing is not
// preserved in diff output.
func (t *Tokenizer) Preprocess(text string) string {
	if text == "" {
		return ""
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(normalized))
	lastWasSpace := false
	for _, r := range normalized {
		switch {
		case unicode.IsSpace(r):
			if !lastWasSpace {
				sb.WriteByte(' ')
				lastWasSpace = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r) || isAllowedPunct(r):
			sb.WriteRune(unicode.ToLower(r))
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(sb.String())
}

// isAllowedPunct reports whether r belongs to the whitelist of word/sentence
// punctuation kept by preprocessing.
func isAllowedPunct(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '\'', '"', '(', ')', '-':
		return true
	}
	return false
}

// tokenizeWords splits on whitespace runs, keeping the runs as their own
// tokens so position accounting stays exact on reconstruction. Word contents
// shed edge punctuation ("jumps." compares as "jumps") while Length still
// covers the raw run.
func (t *Tokenizer) tokenizeWords(text string) []Token {
	tokens := make([]Token, 0, len(text)/5+1)

	start := 0
	inSpace := text[0] == ' '
	for i := 0; i <= len(text); i++ {
		atEnd := i == len(text)
		if !atEnd && (text[i] == ' ') == inSpace {
			continue
		}
		run := text[start:i]
		tokens = append(tokens, Token{
			Content: strings.TrimFunc(run, func(r rune) bool {
				return r == ' ' || isAllowedPunct(r)
			}),
			Length: len(run),
		})
		if atEnd {
			break
		}
		start = i
		inSpace = !inSpace
	}

	return tokens
}

// tokenizeSentences splits at sentence-ending punctuation followed by a
// letter or digit-dot-letter sequence, then drops short and boilerplate
// segments. Dropped segments still contribute their raw length to the
// preceding kept token so offsets do not drift.
func (t *Tokenizer) tokenizeSentences(text string) []Token {
	bounds := sentenceBoundaries(text)

	tokens := make([]Token, 0, len(bounds))
	prev := 0
	pending := 0
	for _, end := range bounds {
		raw := text[prev:end]
		content := strings.TrimSpace(raw)
		prev = end

		if len(content) < t.minTokenLength || t.isBoilerplate(content) {
			// Fold the dropped segment's length into a neighboring token so
			// downstream position counters still cover the full text.
			if n := len(tokens); n > 0 {
				tokens[n-1].Length += len(raw)
			} else {
				pending += len(raw)
			}
			continue
		}

		tokens = append(tokens, Token{Content: content, Length: len(raw) + pending})
		pending = 0
	}

	return tokens
}

// sentenceBoundaries returns the exclusive end offset of each sentence in
// text. A boundary is sentence-ending punctuation followed by whitespace and
// a letter or digit. Go's regexp has no lookahead, so the boundary rule is a
// manual scan.
func sentenceBoundaries(text string) []int {
	var bounds []int
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		// Consume trailing punctuation runs ("..." or "?!") as one boundary.
		j := i + 1
		for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?' || text[j] == '"' || text[j] == '\'') {
			j++
		}
		if j >= len(text) {
			i = j
			continue
		}
		if text[j] != ' ' {
			continue
		}
		k := j + 1
		if k < len(text) && (isAlnum(text[k])) {
			bounds = append(bounds, j)
			i = j
		}
	}
	bounds = append(bounds, len(text))
	return bounds
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isBoilerplate reports whether a sentence segment matches one of the
// recurring non-substantive patterns (captions, citation leads, bare numbers).
func (t *Tokenizer) isBoilerplate(content string) bool {
	for _, pattern := range boilerplatePatterns {
		if pattern.MatchString(content) {
			return true
		}
	}
	return false
}

// Rejoin concatenates token contents with single spaces, skipping whitespace
// tokens. The bit-diff engine feeds the rejoined strings to the character
// level diff backend.
func Rejoin(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Content == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Content)
	}
	return sb.String()
}
