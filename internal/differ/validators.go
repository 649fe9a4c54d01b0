package differ

import (
	"fmt"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/aleister1102/docdiff/internal/scorer"
	"github.com/aleister1102/docdiff/internal/tokenizer"
)

const (
	// shortTextWarningLength is the length below which input draws a warning.
	shortTextWarningLength = 50
	// sizeSkewWarningFactor is the token-count ratio between original and
	// revised above which a skew warning is issued.
	sizeSkewWarningFactor = 10
)

// InputValidator validates diff input texts against the acceptance rules:
// empty and over-length texts are errors, short or non-academic texts are
// advisory warnings that never block computation.
type InputValidator struct {
	maxTextLength int
	tokenizer     *tokenizer.Tokenizer
}

// NewInputValidator creates a new input validator
func NewInputValidator(maxTextLength int) *InputValidator {
	return &InputValidator{
		maxTextLength: maxTextLength,
		tokenizer:     tokenizer.NewTokenizerBuilder().Build(),
	}
}

// Validate checks a single input text.
func (iv *InputValidator) Validate(text string) models.ValidationResult {
	result := models.ValidationResult{IsValid: true}

	if len(text) == 0 {
		result.AddError("text is empty")
		return result
	}
	if len(text) > iv.maxTextLength {
		result.AddError(fmt.Sprintf("text exceeds maximum length (%d > %d characters)", len(text), iv.maxTextLength))
		return result
	}

	if len(text) < shortTextWarningLength {
		result.AddWarning(fmt.Sprintf("text is shorter than %d characters, results may be uninformative", shortTextWarningLength))
	}
	if !scorer.ContainsDomainKeyword(text) {
		result.AddWarning("text does not contain any academic content keywords")
	}

	return result
}

// ValidatePair checks both input texts together, adding a warning when their
// token counts are heavily skewed.
func (iv *InputValidator) ValidatePair(original, revised string) models.ValidationResult {
	result := iv.Validate(original)
	revisedResult := iv.Validate(revised)

	result.IsValid = result.IsValid && revisedResult.IsValid
	result.Errors = append(result.Errors, revisedResult.Errors...)
	result.Warnings = append(result.Warnings, revisedResult.Warnings...)
	if !result.IsValid {
		return result
	}

	origCount := len(iv.tokenizer.Tokenize(original, models.GranularityWord))
	revCount := len(iv.tokenizer.Tokenize(revised, models.GranularityWord))
	if origCount > 0 && revCount > 0 {
		larger, smaller := origCount, revCount
		if smaller > larger {
			larger, smaller = smaller, larger
		}
		if larger > smaller*sizeSkewWarningFactor {
			result.AddWarning(fmt.Sprintf("large size skew between original (%d tokens) and revised (%d tokens)", origCount, revCount))
		}
	}

	return result
}
