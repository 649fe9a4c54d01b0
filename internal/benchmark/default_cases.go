package benchmark

import "github.com/aleister1102/docdiff/internal/models"

// DefaultTestCases returns the canned benchmark corpus: a small edit, a
// paraphrase, an identical pair, and an academic abstract revision. The
// expected type lists drive the expected-type-coverage accuracy metric.
func DefaultTestCases() []models.TestCase {
	return []models.TestCase{
		{
			Name:          "small-edit",
			Original:      "The quick brown fox jumps over the lazy dog.",
			Revised:       "The quick brown fox leaps over the lazy dog.",
			ExpectedTypes: []models.DiffType{models.DiffTypeAddition, models.DiffTypeDeletion},
		},
		{
			Name: "paraphrase",
			Original: "The experiment demonstrated a significant increase in reaction time. " +
				"Participants responded faster under the control condition.",
			Revised: "Reaction time rose significantly during the experiment. " +
				"Under the control condition, participants showed faster responses.",
			ExpectedTypes: []models.DiffType{models.DiffTypeAddition, models.DiffTypeDeletion},
		},
		{
			Name:          "identical",
			Original:      "The methodology section describes the data collection procedure in detail.",
			Revised:       "The methodology section describes the data collection procedure in detail.",
			ExpectedTypes: []models.DiffType{},
		},
		{
			Name: "abstract-revision",
			Original: "This research presents an analysis of the literature on distributed systems. " +
				"The results support the hypothesis that consensus latency dominates throughput. " +
				"The discussion covers the methodology limitations.",
			Revised: "This research presents a broad analysis of the literature on distributed systems. " +
				"The results reject the hypothesis that consensus latency dominates throughput. " +
				"The conclusion covers the methodology limitations and future data collection.",
			ExpectedTypes: []models.DiffType{models.DiffTypeAddition, models.DiffTypeDeletion},
		},
	}
}
