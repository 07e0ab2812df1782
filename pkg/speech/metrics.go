// Package speech computes raw speech metrics from a transcript: filler-word
// occurrences, word counts, and speaking rate. It is pure text analysis; the
// transcript itself comes from the transcription service.
package speech

import (
	"regexp"
	"sort"
	"strings"
)

// FillerWords is the lexicon of filler words and phrases to detect.
// Multi-word phrases are matched as a whole ("you know", "sort of").
var FillerWords = []string{
	"um", "uh", "umm", "uhh", "erm", "err",
	"like", "you know", "i mean", "sort of", "kind of",
	"basically", "actually", "literally", "right",
	"okay", "so", "well", "hmm", "ah", "oh",
}

// Occurrence is a single filler-word hit in the transcript.
type Occurrence struct {
	Word     string
	Position int
	Context  string
}

// contextRadius is how many characters of surrounding text to keep per hit.
const contextRadius = 50

var fillerPatterns = compilePatterns()

func compilePatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(FillerWords))
	for _, filler := range FillerWords {
		patterns[filler] = regexp.MustCompile(`\b` + regexp.QuoteMeta(filler) + `\b`)
	}
	return patterns
}

// DetectFillerWords finds all filler-word occurrences in the transcript,
// sorted by position.
func DetectFillerWords(transcript string) []Occurrence {
	lower := strings.ToLower(transcript)

	var found []Occurrence
	for _, filler := range FillerWords {
		for _, match := range fillerPatterns[filler].FindAllStringIndex(lower, -1) {
			found = append(found, Occurrence{
				Word:     filler,
				Position: match[0],
				Context:  contextAround(transcript, match[0]),
			})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Position < found[j].Position })

	return found
}

// contextAround returns the transcript text surrounding a position.
func contextAround(text string, position int) string {
	start := position - contextRadius
	if start < 0 {
		start = 0
	}
	end := position + contextRadius
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}

// WordCount counts whitespace-separated words in the transcript.
func WordCount(transcript string) int {
	return len(strings.Fields(transcript))
}

// WordsPerMinute computes speaking rate. Zero duration yields zero rather
// than a division error.
func WordsPerMinute(totalWords int, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return float64(totalWords) / (durationSeconds / 60)
}
