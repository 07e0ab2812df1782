package coach

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

const feedbackSystemPrompt = "You are an expert presentation coach with 20+ years of experience. " +
	"You provide constructive, actionable, and encouraging feedback. " +
	"Focus on specific improvements while highlighting strengths. " +
	"Keep your feedback structured and easy to follow."

const (
	feedbackTemperature     = 0.7
	transcriptExcerptLength = 500
)

// FeedbackInput carries the analysis results the coach reasons over.
type FeedbackInput struct {
	DurationSeconds float64
	TotalWords      int
	WordsPerMinute  float64
	FillerWordCount int
	FillerWords     models.FillerWordList
	PacingScore     float64
	ClarityScore    float64
	OverallScore    float64
	Transcription   string
}

// Service generates coaching output, falling back to deterministic feedback
// when the API is unavailable.
type Service struct {
	generator Generator
}

// NewService creates a coach service backed by the given generator.
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// GenerateFeedback produces coaching feedback for a completed analysis. It
// never fails: an API error degrades to rule-based feedback.
func (s *Service) GenerateFeedback(ctx context.Context, input FeedbackInput) string {
	if s.generator != nil {
		feedback, err := s.generator.Generate(ctx, feedbackSystemPrompt, coachingPrompt(input), feedbackTemperature)
		if err == nil && strings.TrimSpace(feedback) != "" {
			return strings.TrimSpace(feedback)
		}
		if err != nil {
			log.Printf("[ERROR] AI feedback generation failed, using fallback: %v", err)
		}
	}

	return fallbackFeedback(input)
}

func coachingPrompt(input FeedbackInput) string {
	var b strings.Builder

	b.WriteString("Please analyze this presentation recording and provide detailed coaching feedback:\n\n")
	b.WriteString("**RECORDING DETAILS:**\n")
	fmt.Fprintf(&b, "- Duration: %.1f seconds\n", input.DurationSeconds)
	fmt.Fprintf(&b, "- Total Words: %d\n", input.TotalWords)
	fmt.Fprintf(&b, "- Words Per Minute: %.1f WPM\n", input.WordsPerMinute)
	fmt.Fprintf(&b, "- Filler Words Detected: %d\n\n", input.FillerWordCount)

	b.WriteString("**SCORES:**\n")
	fmt.Fprintf(&b, "- Pacing Score: %.1f/100\n", input.PacingScore)
	fmt.Fprintf(&b, "- Clarity Score: %.1f/100\n", input.ClarityScore)
	fmt.Fprintf(&b, "- Overall Score: %.1f/100\n\n", input.OverallScore)

	b.WriteString("**COMMON FILLER WORDS USED:**\n")
	b.WriteString(formatFillerWords(input.FillerWords))
	b.WriteString("\n\n**TRANSCRIPTION EXCERPT:**\n")
	b.WriteString(transcriptionExcerpt(input.Transcription))

	b.WriteString("\n\nBased on this data, please provide:\n\n")
	b.WriteString("1. **Overall Assessment** (2-3 sentences about their performance)\n\n")
	b.WriteString("2. **Strengths** (What they did well)\n\n")
	b.WriteString("3. **Areas for Improvement** (Specific issues to address)\n\n")
	b.WriteString("4. **Actionable Tips** (3-5 concrete steps they can take to improve)\n\n")
	b.WriteString("5. **Next Practice Focus** (What to focus on in their next recording)\n\n")
	b.WriteString("Format your response in clear sections with bullet points where appropriate.\n")
	b.WriteString("Be encouraging but honest. Focus on growth and improvement.")

	return b.String()
}

// formatFillerWords lists the most frequent filler words, capped at ten.
func formatFillerWords(fillers models.FillerWordList) string {
	if len(fillers) == 0 {
		return "None detected - Excellent!"
	}

	counts := make(map[string]int)
	for _, f := range fillers {
		counts[f.Word]++
	}

	type wordCount struct {
		word  string
		count int
	}
	sorted := make([]wordCount, 0, len(counts))
	for word, count := range counts {
		sorted = append(sorted, wordCount{word, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].word < sorted[j].word
	})

	if len(sorted) > 10 {
		sorted = sorted[:10]
	}

	lines := make([]string, 0, len(sorted))
	for _, wc := range sorted {
		lines = append(lines, fmt.Sprintf("  - '%s': %d times", wc.word, wc.count))
	}
	return strings.Join(lines, "\n")
}

func transcriptionExcerpt(transcription string) string {
	if transcription == "" {
		return "No transcription available"
	}
	if len(transcription) <= transcriptExcerptLength {
		return transcription
	}
	return transcription[:transcriptExcerptLength] + "... [truncated]"
}

// fallbackFeedback builds rule-based feedback from the metrics alone.
func fallbackFeedback(input FeedbackInput) string {
	var b strings.Builder

	b.WriteString("## Overall Assessment\n\n")
	fmt.Fprintf(&b, "Your presentation scored %.1f/100. Here's a breakdown of your performance:\n\n", input.OverallScore)

	b.WriteString("## Pacing Analysis\n\n")
	fmt.Fprintf(&b, "You spoke at %.1f words per minute. ", input.WordsPerMinute)
	switch {
	case input.WordsPerMinute >= 120 && input.WordsPerMinute <= 150:
		b.WriteString("This is an excellent pace - clear and easy to follow!")
	case input.WordsPerMinute < 120:
		b.WriteString("Consider speaking a bit faster to maintain audience engagement.")
	default:
		b.WriteString("Try slowing down slightly to ensure clarity and comprehension.")
	}

	b.WriteString("\n\n## Clarity Analysis\n\n")
	fmt.Fprintf(&b, "You used %d filler words in your presentation. ", input.FillerWordCount)
	switch {
	case input.FillerWordCount < 5:
		b.WriteString("Excellent control of filler words! Your speech is very clear.")
	case input.FillerWordCount < 15:
		b.WriteString("Good job! A few filler words are normal, but try to reduce them further.")
	default:
		b.WriteString("Focus on reducing filler words. Practice pausing instead of using fillers.")
	}

	b.WriteString("\n\n## Action Steps\n\n")
	b.WriteString("1. Record yourself practicing and review the playback\n")
	b.WriteString("2. Practice pausing briefly instead of using filler words\n")
	b.WriteString("3. Focus on maintaining consistent pacing throughout\n")
	b.WriteString("4. Work on confidence through repeated practice\n\n")
	b.WriteString("Keep practicing - you're making progress!")

	return b.String()
}
