package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyScoreExactSubstring(t *testing.T) {
	assert.Equal(t, 100, FuzzyScore("phone", "Phone Case"))
	assert.Equal(t, 100, FuzzyScore("Case", "phone case"))
	assert.Equal(t, 100, FuzzyScore("phone case", "Phone Case"))
}

func TestFuzzyScoreMisspelling(t *testing.T) {
	// A one-letter misspelling of a word in the title should still clear
	// the search threshold
	score := FuzzyScore("fone", "Phone Case")
	assert.GreaterOrEqual(t, score, 60, "score was %d", score)
}

func TestFuzzyScoreUnrelated(t *testing.T) {
	score := FuzzyScore("xyz123", "Phone Case")
	assert.Less(t, score, 60, "score was %d", score)
}

func TestFuzzyScoreEmptyInputs(t *testing.T) {
	assert.Equal(t, 0, FuzzyScore("", "Phone Case"))
	assert.Equal(t, 0, FuzzyScore("phone", ""))
	assert.Equal(t, 0, FuzzyScore("", ""))
}

func TestFuzzyScoreIgnoresCaseAndPunctuation(t *testing.T) {
	assert.Equal(t, 100, FuzzyScore("BISI'S", "bisi's kitchen"))
	assert.Equal(t, 100, FuzzyScore("hand made", "Hand-Made Soap"))
}
