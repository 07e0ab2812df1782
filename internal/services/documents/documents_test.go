package documents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText([]byte("  Hello world, this is the document.  "), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "Hello world, this is the document.", text)
}

func TestExtractText_EmptyPlainText(t *testing.T) {
	_, err := ExtractText([]byte("   \n  "), "empty.txt")
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText([]byte("binary"), "slides.pptx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf at all"), "broken.pdf")
	assert.Error(t, err)
}

func TestExtractKeyPoints(t *testing.T) {
	t.Run("bullet lines and declarative statements", func(t *testing.T) {
		text := strings.Join([]string{
			"Roadmap 2026",
			"",
			"• Ship the new onboarding flow by the end of March",
			"- Reduce page load time below two seconds everywhere",
			"we should probably think about hiring",
			"Reliability is the top priority for the platform team",
			"Agenda:",
			"ok",
		}, "\n")

		points := ExtractKeyPoints(text)

		assert.Contains(t, points, "• Ship the new onboarding flow by the end of March")
		assert.Contains(t, points, "- Reduce page load time below two seconds everywhere")
		assert.Contains(t, points, "Reliability is the top priority for the platform team")
		assert.NotContains(t, points, "Roadmap 2026", "too short")
		assert.NotContains(t, points, "we should probably think about hiring", "lowercase start")
		assert.NotContains(t, points, "Agenda:", "header with trailing colon")
	})

	t.Run("caps at twenty points", func(t *testing.T) {
		var lines []string
		for i := 0; i < 30; i++ {
			lines = append(lines, "• This bullet line has exactly enough words to qualify here")
		}

		points := ExtractKeyPoints(strings.Join(lines, "\n"))
		assert.Len(t, points, maxKeyPoints)
	})

	t.Run("empty text yields no points", func(t *testing.T) {
		assert.Empty(t, ExtractKeyPoints(""))
	})
}

func TestCoverage(t *testing.T) {
	t.Run("no key points means full coverage", func(t *testing.T) {
		result := Coverage("anything at all", nil)
		assert.Equal(t, 100.0, result.Score)
		assert.Empty(t, result.MissedPoints)
	})

	t.Run("covered and missed points", func(t *testing.T) {
		keyPoints := []string{
			"Ship the onboarding flow in March",
			"Hire four engineers for the platform team",
		}
		transcript := "This quarter we will ship the new onboarding flow in March as promised."

		result := Coverage(transcript, keyPoints)

		assert.Equal(t, 50.0, result.Score)
		require.Len(t, result.MissedPoints, 1)
		assert.Equal(t, "Hire four engineers for the platform team", result.MissedPoints[0])
	})

	t.Run("stop words do not count toward coverage", func(t *testing.T) {
		// Every non-stop word must be checked; a transcript of stop words
		// alone covers nothing.
		result := Coverage("the and or but in on at", []string{"Launch rockets toward orbit successfully this year"})
		assert.Equal(t, 0.0, result.Score)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		result := Coverage("LAUNCH ROCKETS TOWARD ORBIT SUCCESSFULLY THIS YEAR", []string{"launch rockets toward orbit successfully this year"})
		assert.Equal(t, 100.0, result.Score)
	})
}
