package models

import (
	"math"
	"testing"

	"github.com/aleister1102/docdiff/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Granularity
		wantErr  bool
	}{
		{name: "word", input: "word", expected: GranularityWord},
		{name: "sentence", input: "sentence", expected: GranularitySentence},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "paragraph", wantErr: true},
		{name: "case sensitive", input: "Word", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			granularity, err := ParseGranularity(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errorwrapper.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, granularity)
		})
	}
}

func TestNewFailedBenchmarkResult(t *testing.T) {
	result := NewFailedBenchmarkResult("lcs", "huge-input")

	assert.Equal(t, "lcs", result.Engine)
	assert.Equal(t, "huge-input", result.TestCase)
	assert.True(t, result.Failed)
	assert.True(t, math.IsInf(result.ComputationTimeMs, 1))
	assert.Zero(t, result.DiffCount)
	assert.Zero(t, result.Accuracy)
}
