package documents

import (
	"math"
	"strings"
)

// coverageThreshold is the fraction of a key point's content words that must
// appear in the transcript for the point to count as covered.
const coverageThreshold = 0.5

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true,
}

// CoverageResult reports how much of the reference document was spoken.
type CoverageResult struct {
	// Score is the percentage of key points covered, 0-100.
	Score float64
	// MissedPoints are the key points the transcript did not cover.
	MissedPoints []string
}

// Coverage measures how well a transcript covers the document's key points.
// A point is covered when at least half its non-stop-word terms appear in
// the transcript. With no key points, coverage is a perfect score.
func Coverage(transcription string, keyPoints []string) CoverageResult {
	if len(keyPoints) == 0 {
		return CoverageResult{Score: 100.0, MissedPoints: []string{}}
	}

	transcriptionLower := strings.ToLower(transcription)

	covered := 0
	missed := []string{}

	for _, point := range keyPoints {
		words := contentWords(point)
		if len(words) == 0 {
			continue
		}

		matches := 0
		for word := range words {
			if strings.Contains(transcriptionLower, word) {
				matches++
			}
		}

		if float64(matches)/float64(len(words)) >= coverageThreshold {
			covered++
		} else {
			missed = append(missed, point)
		}
	}

	score := float64(covered) / float64(len(keyPoints)) * 100
	return CoverageResult{
		Score:        math.Round(score*10) / 10,
		MissedPoints: missed,
	}
}

// contentWords returns the lowercased words of a key point minus stop words.
func contentWords(point string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(point)) {
		if !stopWords[word] {
			words[word] = true
		}
	}
	return words
}
