package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFillerWords(t *testing.T) {
	t.Run("finds fillers with positions sorted", func(t *testing.T) {
		transcript := "Um, today I want to, like, talk about our roadmap. You know, the big picture."

		found := DetectFillerWords(transcript)

		assert.NotEmpty(t, found)
		words := make([]string, 0, len(found))
		for i, occ := range found {
			words = append(words, occ.Word)
			if i > 0 {
				assert.GreaterOrEqual(t, occ.Position, found[i-1].Position)
			}
		}
		assert.Contains(t, words, "um")
		assert.Contains(t, words, "like")
		assert.Contains(t, words, "you know")
	})

	t.Run("matches whole words only", func(t *testing.T) {
		// "umbrella" contains "um" but is not a filler
		found := DetectFillerWords("The umbrella business is likely to grow.")

		for _, occ := range found {
			assert.NotEqual(t, "um", occ.Word)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		found := DetectFillerWords("UM. Basically this works.")

		words := make([]string, 0, len(found))
		for _, occ := range found {
			words = append(words, occ.Word)
		}
		assert.Contains(t, words, "um")
		assert.Contains(t, words, "basically")
	})

	t.Run("empty transcript yields no occurrences", func(t *testing.T) {
		assert.Empty(t, DetectFillerWords(""))
	})

	t.Run("context surrounds the occurrence", func(t *testing.T) {
		transcript := "We shipped the feature last week and, um, adoption has been strong so far."

		found := DetectFillerWords(transcript)

		var umContext string
		for _, occ := range found {
			if occ.Word == "um" {
				umContext = occ.Context
			}
		}
		assert.Contains(t, umContext, "um")
		assert.NotEmpty(t, umContext)
	})
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 5, WordCount("one two three four five"))
	assert.Equal(t, 3, WordCount("  spaced   out   words  "))
}

func TestWordsPerMinute(t *testing.T) {
	t.Run("computes rate", func(t *testing.T) {
		assert.InDelta(t, 140.0, WordsPerMinute(140, 60), 0.001)
		assert.InDelta(t, 120.0, WordsPerMinute(60, 30), 0.001)
	})

	t.Run("zero duration yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, WordsPerMinute(100, 0))
		assert.Equal(t, 0.0, WordsPerMinute(100, -1))
	})
}
