package progression

import (
	"time"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

// Trend classifies the recent score direction of a presentation.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

// trendWindow is how many recent completed scores feed the trend rule.
const trendWindow = 3

// trendThreshold is the mean-delta magnitude separating stable from a trend.
const trendThreshold = 5.0

// HistoryPoint is one completed iteration in a progress summary.
type HistoryPoint struct {
	Iteration int       `json:"iteration"`
	Score     float64   `json:"score"`
	Date      time.Time `json:"date"`
}

// Summary is the per-presentation progress view.
type Summary struct {
	TotalRecordings     int            `json:"total_recordings"`
	CompletedRecordings int            `json:"completed_recordings"`
	AverageScore        float64        `json:"average_score"`
	BestScore           float64        `json:"best_score"`
	LatestScore         float64        `json:"latest_score"`
	Trend               Trend          `json:"trend"`
	History             []HistoryPoint `json:"history"`
	TotalXP             int            `json:"total_xp"`
	CurrentLevel        int            `json:"current_level"`
	LevelName           string         `json:"level_name"`
	XPToNextLevel       int            `json:"xp_to_next_level"`
	BadgeCount          int            `json:"badge_count"`
}

// Summarize builds the progress summary for a presentation. Recordings must
// be in iteration order; only completed ones contribute scores.
func Summarize(p *models.Presentation, recordings []models.Recording) Summary {
	summary := Summary{
		TotalRecordings: len(recordings),
		Trend:           TrendInsufficientData,
		TotalXP:         p.TotalXP,
		CurrentLevel:    p.CurrentLevel,
		LevelName:       p.LevelName(),
		XPToNextLevel:   p.XPToNextLevel(),
		BadgeCount:      len(p.Badges),
		History:         []HistoryPoint{},
	}

	var sum float64
	for i := range recordings {
		r := &recordings[i]
		if r.Status != models.RecordingStatusCompleted {
			continue
		}

		summary.CompletedRecordings++
		sum += r.OverallScore
		summary.LatestScore = r.OverallScore
		if r.OverallScore > summary.BestScore {
			summary.BestScore = r.OverallScore
		}
		summary.History = append(summary.History, HistoryPoint{
			Iteration: r.IterationNumber,
			Score:     r.OverallScore,
			Date:      r.CreatedAt,
		})
	}

	if summary.CompletedRecordings > 0 {
		summary.AverageScore = sum / float64(summary.CompletedRecordings)
	}
	summary.Trend = classifyTrend(summary.History)

	return summary
}

// classifyTrend applies the trend rule over the recent window: the mean
// iteration-to-iteration delta of the last few completed scores. Fewer than
// 2 completed recordings is insufficient data.
func classifyTrend(history []HistoryPoint) Trend {
	if len(history) < 2 {
		return TrendInsufficientData
	}

	window := history
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}

	var meanDelta float64
	for i := 1; i < len(window); i++ {
		meanDelta += window[i].Score - window[i-1].Score
	}
	meanDelta /= float64(len(window) - 1)

	switch {
	case meanDelta > trendThreshold:
		return TrendImproving
	case meanDelta < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
