// Package badges decides which achievement badges newly apply after a
// presentation state change. Rules are re-evaluated from scratch on every
// call; idempotence comes from checking the existing badge set (backed by
// a unique index), never from evaluator-side counters.
package badges

import (
	"fmt"
	"time"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

// streakLength is how many consecutive positive deltas earn the streak badge.
const streakLength = 3

// State is the presentation-wide view a rule evaluates over.
type State struct {
	Presentation *models.Presentation
	// Recordings in iteration order, all statuses.
	Recordings []models.Recording
	// OldLevel is the level recorded before the update being evaluated.
	OldLevel int
	// Existing is the set of badge types already earned.
	Existing map[models.BadgeType]bool
}

// rule is a predicate over the full state plus the metadata the badge
// should carry when it fires.
type rule struct {
	badgeType models.BadgeType
	applies   func(s *State) (bool, models.BadgeMetadata)
}

var rules = []rule{
	{models.BadgeFirstRecording, firstRecording},
	{models.BadgeFirstCompletion, firstCompletion},
	{models.BadgePerfectionist, perfectionist},
	{models.BadgeFiveRecordings, fiveRecordings},
	{models.BadgeTenRecordings, tenRecordings},
	{models.BadgeLevelUp, levelUp},
	{models.BadgeMaxLevel, maxLevel},
	{models.BadgeImprovementStreak, improvementStreak},
}

// Evaluate returns the badges newly earned for the given state: every rule
// whose condition holds and whose badge type is not already present.
func Evaluate(s *State) []models.Badge {
	now := time.Now().UTC()

	var earned []models.Badge
	for _, r := range rules {
		if s.Existing[r.badgeType] {
			continue
		}
		ok, metadata := r.applies(s)
		if !ok {
			continue
		}
		earned = append(earned, models.Badge{
			PresentationID: s.Presentation.ID,
			BadgeType:      r.badgeType,
			Name:           models.BadgeDisplayNames[r.badgeType],
			EarnedAt:       now,
			Metadata:       metadata,
		})
	}

	return earned
}

func completedCount(s *State) int {
	count := 0
	for i := range s.Recordings {
		if s.Recordings[i].Status == models.RecordingStatusCompleted {
			count++
		}
	}
	return count
}

func firstRecording(s *State) (bool, models.BadgeMetadata) {
	if completedCount(s) != 1 {
		return false, nil
	}
	return true, models.BadgeMetadata{"message": "Completed your first recording!"}
}

func firstCompletion(s *State) (bool, models.BadgeMetadata) {
	if completedCount(s) < 1 {
		return false, nil
	}
	return true, models.BadgeMetadata{"message": "First successful analysis completed!"}
}

func perfectionist(s *State) (bool, models.BadgeMetadata) {
	for i := range s.Recordings {
		r := &s.Recordings[i]
		if r.Status == models.RecordingStatusCompleted && r.OverallScore >= 95 {
			return true, models.BadgeMetadata{
				"message": fmt.Sprintf("Achieved a score of %.1f!", r.OverallScore),
				"score":   r.OverallScore,
			}
		}
	}
	return false, nil
}

func fiveRecordings(s *State) (bool, models.BadgeMetadata) {
	count := completedCount(s)
	if count < 5 {
		return false, nil
	}
	return true, models.BadgeMetadata{"message": "Completed 5 recordings!", "count": count}
}

func tenRecordings(s *State) (bool, models.BadgeMetadata) {
	count := completedCount(s)
	if count < 10 {
		return false, nil
	}
	return true, models.BadgeMetadata{"message": "Completed 10 recordings!", "count": count}
}

func levelUp(s *State) (bool, models.BadgeMetadata) {
	if s.Presentation.CurrentLevel <= s.OldLevel {
		return false, nil
	}
	return true, models.BadgeMetadata{
		"message": fmt.Sprintf("Reached level %d!", s.Presentation.CurrentLevel),
		"level":   s.Presentation.CurrentLevel,
	}
}

func maxLevel(s *State) (bool, models.BadgeMetadata) {
	if s.Presentation.CurrentLevel < models.MaxLevel {
		return false, nil
	}
	return true, models.BadgeMetadata{
		"message": "Reached maximum level - Presentation Master!",
		"level":   models.MaxLevel,
	}
}

func improvementStreak(s *State) (bool, models.BadgeMetadata) {
	streak := 0
	for i := range s.Recordings {
		r := &s.Recordings[i]
		if r.Status != models.RecordingStatusCompleted {
			continue
		}
		if r.ImprovementDelta != nil && *r.ImprovementDelta > 0 {
			streak++
			if streak >= streakLength {
				return true, models.BadgeMetadata{
					"message": fmt.Sprintf("%d improvements in a row!", streak),
					"streak":  streak,
				}
			}
		} else {
			streak = 0
		}
	}
	return false, nil
}
