package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/gorm"
)

func completedRecording(id uint, iteration int, score float64) models.Recording {
	return models.Recording{
		Model:           gorm.Model{ID: id},
		IterationNumber: iteration,
		Status:          models.RecordingStatusCompleted,
		OverallScore:    score,
	}
}

func TestImprovementDelta(t *testing.T) {
	t.Run("nil for the first iteration", func(t *testing.T) {
		current := completedRecording(1, 1, 60)

		delta := ImprovementDelta(&current, []models.Recording{current})

		assert.Nil(t, delta)
	})

	t.Run("delta versus the immediately preceding completed iteration", func(t *testing.T) {
		history := []models.Recording{
			completedRecording(1, 1, 60),
			completedRecording(2, 2, 75),
			completedRecording(3, 3, 70),
		}

		second := history[1]
		third := history[2]

		delta2 := ImprovementDelta(&second, history)
		require.NotNil(t, delta2)
		assert.InDelta(t, 15.0, *delta2, 0.001)

		delta3 := ImprovementDelta(&third, history)
		require.NotNil(t, delta3)
		assert.InDelta(t, -5.0, *delta3, 0.001)
	})

	t.Run("failed iterations are skipped", func(t *testing.T) {
		failed := models.Recording{
			Model:           gorm.Model{ID: 2},
			IterationNumber: 2,
			Status:          models.RecordingStatusFailed,
		}
		history := []models.Recording{
			completedRecording(1, 1, 50),
			failed,
			completedRecording(3, 3, 80),
		}

		third := history[2]
		delta := ImprovementDelta(&third, history)

		require.NotNil(t, delta)
		assert.InDelta(t, 30.0, *delta, 0.001)
	})

	t.Run("nil when no prior completed iteration exists", func(t *testing.T) {
		failed := models.Recording{
			Model:           gorm.Model{ID: 1},
			IterationNumber: 1,
			Status:          models.RecordingStatusFailed,
		}
		history := []models.Recording{failed, completedRecording(2, 2, 65)}

		second := history[1]
		delta := ImprovementDelta(&second, history)

		assert.Nil(t, delta)
	})
}

func TestFormatImprovement(t *testing.T) {
	t.Run("N/A for nil delta", func(t *testing.T) {
		assert.Equal(t, "N/A", FormatImprovement(nil, 0))
		assert.Equal(t, "N/A", FormatImprovement(nil, 80))
	})

	t.Run("signed percentage relative to the prior score", func(t *testing.T) {
		delta := 10.0
		assert.Equal(t, "+12.5%", FormatImprovement(&delta, 80))

		down := -2.4
		assert.Equal(t, "-3.0%", FormatImprovement(&down, 80))
	})

	t.Run("prior score of zero yields 0.0% not a division error", func(t *testing.T) {
		delta := 55.0
		assert.Equal(t, "0.0%", FormatImprovement(&delta, 0))
	})

	t.Run("exactly zero change", func(t *testing.T) {
		delta := 0.0
		assert.Equal(t, "0.0%", FormatImprovement(&delta, 70))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("three completed iterations", func(t *testing.T) {
		p := &models.Presentation{TotalXP: 120, CurrentLevel: 2}
		recordings := []models.Recording{
			completedRecording(1, 1, 60),
			completedRecording(2, 2, 75),
			completedRecording(3, 3, 70),
		}

		summary := Summarize(p, recordings)

		assert.Equal(t, 3, summary.TotalRecordings)
		assert.Equal(t, 3, summary.CompletedRecordings)
		assert.InDelta(t, 68.33, summary.AverageScore, 0.01)
		assert.Equal(t, 75.0, summary.BestScore)
		assert.Equal(t, 70.0, summary.LatestScore)
		// Mean delta over the window is (+15 - 5) / 2 = +5, inside the stable band
		assert.Equal(t, TrendStable, summary.Trend)
		require.Len(t, summary.History, 3)
		assert.Equal(t, 1, summary.History[0].Iteration)
		assert.Equal(t, 60.0, summary.History[0].Score)
	})

	t.Run("fewer than two completed recordings is insufficient data", func(t *testing.T) {
		p := &models.Presentation{CurrentLevel: 1}

		empty := Summarize(p, nil)
		assert.Equal(t, TrendInsufficientData, empty.Trend)

		one := Summarize(p, []models.Recording{completedRecording(1, 1, 80)})
		assert.Equal(t, TrendInsufficientData, one.Trend)
	})

	t.Run("steady gains classify as improving", func(t *testing.T) {
		p := &models.Presentation{CurrentLevel: 1}
		recordings := []models.Recording{
			completedRecording(1, 1, 50),
			completedRecording(2, 2, 62),
			completedRecording(3, 3, 75),
		}

		summary := Summarize(p, recordings)

		assert.Equal(t, TrendImproving, summary.Trend)
	})

	t.Run("steady losses classify as declining", func(t *testing.T) {
		p := &models.Presentation{CurrentLevel: 1}
		recordings := []models.Recording{
			completedRecording(1, 1, 80),
			completedRecording(2, 2, 70),
			completedRecording(3, 3, 58),
		}

		summary := Summarize(p, recordings)

		assert.Equal(t, TrendDeclining, summary.Trend)
	})

	t.Run("failed recordings count toward total but not scores", func(t *testing.T) {
		p := &models.Presentation{CurrentLevel: 1}
		failed := models.Recording{
			Model:           gorm.Model{ID: 2},
			IterationNumber: 2,
			Status:          models.RecordingStatusFailed,
		}
		recordings := []models.Recording{completedRecording(1, 1, 90), failed}

		summary := Summarize(p, recordings)

		assert.Equal(t, 2, summary.TotalRecordings)
		assert.Equal(t, 1, summary.CompletedRecordings)
		assert.Equal(t, 90.0, summary.AverageScore)
		assert.Len(t, summary.History, 1)
	})
}
