package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

type stubGenerator struct {
	response string
	err      error

	lastSystem string
	lastPrompt string
}

func (g *stubGenerator) Generate(ctx context.Context, system, prompt string, temperature float64) (string, error) {
	g.lastSystem = system
	g.lastPrompt = prompt
	return g.response, g.err
}

func TestGenerateFeedback(t *testing.T) {
	input := FeedbackInput{
		DurationSeconds: 62.4,
		TotalWords:      140,
		WordsPerMinute:  134.6,
		FillerWordCount: 3,
		FillerWords: models.FillerWordList{
			{Word: "um", Position: 4},
			{Word: "um", Position: 40},
			{Word: "like", Position: 88},
		},
		PacingScore:   100,
		ClarityScore:  95,
		OverallScore:  92.5,
		Transcription: "Good morning everyone, um, today I want to talk about our roadmap.",
	}

	t.Run("uses generator output when available", func(t *testing.T) {
		gen := &stubGenerator{response: "Great pacing overall. Work on your opening."}
		svc := NewService(gen)

		feedback := svc.GenerateFeedback(context.Background(), input)

		assert.Equal(t, "Great pacing overall. Work on your opening.", feedback)
		assert.Contains(t, gen.lastSystem, "presentation coach")
		assert.Contains(t, gen.lastPrompt, "134.6 WPM")
		assert.Contains(t, gen.lastPrompt, "- 'um': 2 times")
		assert.Contains(t, gen.lastPrompt, "Overall Score: 92.5/100")
	})

	t.Run("falls back on generator error", func(t *testing.T) {
		svc := NewService(&stubGenerator{err: errors.New("quota exhausted")})

		feedback := svc.GenerateFeedback(context.Background(), input)

		assert.Contains(t, feedback, "Your presentation scored 92.5/100")
		assert.Contains(t, feedback, "excellent pace")
	})

	t.Run("falls back when no generator configured", func(t *testing.T) {
		svc := NewService(nil)

		slow := input
		slow.WordsPerMinute = 95
		slow.FillerWordCount = 20
		feedback := svc.GenerateFeedback(context.Background(), slow)

		assert.Contains(t, feedback, "speaking a bit faster")
		assert.Contains(t, feedback, "reducing filler words")
	})
}

func TestCoachingPrompt_NoFillers(t *testing.T) {
	prompt := coachingPrompt(FeedbackInput{Transcription: "short talk"})

	assert.Contains(t, prompt, "None detected - Excellent!")
	assert.Contains(t, prompt, "short talk")
}

func TestTranscriptionExcerpt(t *testing.T) {
	assert.Equal(t, "No transcription available", transcriptionExcerpt(""))

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}
	excerpt := transcriptionExcerpt(string(long))
	assert.Len(t, excerpt, transcriptExcerptLength+len("... [truncated]"))
}

func TestGenerateQuestions(t *testing.T) {
	input := QAInput{
		Title:        "Platform Migration Plan",
		Description:  "Moving our services to the new platform",
		DocumentText: "We will migrate in three phases over two quarters.",
	}

	t.Run("parses a JSON array response", func(t *testing.T) {
		gen := &stubGenerator{response: `[
			{"question": "Why three phases?", "answer_framework": "Explain the phasing rationale.", "difficulty": "medium"},
			{"question": "What happens on rollback?", "answer_framework": "Describe the rollback plan.", "difficulty": "hard"}
		]`}
		svc := NewService(gen)

		questions := svc.GenerateQuestions(context.Background(), input)

		require.Len(t, questions, 2)
		assert.Equal(t, "Why three phases?", questions[0].Question)
		assert.Equal(t, "hard", questions[1].Difficulty)
		assert.Contains(t, gen.lastPrompt, "Platform Migration Plan")
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		gen := &stubGenerator{response: "```json\n[{\"question\": \"What is the budget?\", \"answer_framework\": \"Outline costs.\"}]\n```"}
		svc := NewService(gen)

		questions := svc.GenerateQuestions(context.Background(), input)

		require.Len(t, questions, 1)
		assert.Equal(t, "What is the budget?", questions[0].Question)
		assert.Equal(t, "medium", questions[0].Difficulty, "missing difficulty defaults to medium")
	})

	t.Run("fallback set on malformed response", func(t *testing.T) {
		svc := NewService(&stubGenerator{response: "Sorry, I cannot produce JSON today."})

		questions := svc.GenerateQuestions(context.Background(), input)

		require.Len(t, questions, 8)
		assert.Contains(t, questions[0].Question, "Platform Migration Plan")
	})

	t.Run("fallback set on API error", func(t *testing.T) {
		svc := NewService(&stubGenerator{err: errors.New("timeout")})

		questions := svc.GenerateQuestions(context.Background(), QAInput{})

		require.Len(t, questions, 8)
		assert.Contains(t, questions[0].Question, "this topic")
	})

	t.Run("entries without a question are dropped", func(t *testing.T) {
		gen := &stubGenerator{response: `[{"question": ""}, {"question": "Real one?"}]`}
		svc := NewService(gen)

		questions := svc.GenerateQuestions(context.Background(), input)

		require.Len(t, questions, 1)
		assert.Equal(t, "Real one?", questions[0].Question)
	})
}
