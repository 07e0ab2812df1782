package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }

func completed(id uint, iteration int, score float64, delta *float64) models.Recording {
	return models.Recording{
		Model:            gorm.Model{ID: id},
		IterationNumber:  iteration,
		Status:           models.RecordingStatusCompleted,
		OverallScore:     score,
		ImprovementDelta: delta,
	}
}

func badgeTypes(earned []models.Badge) []models.BadgeType {
	types := make([]models.BadgeType, 0, len(earned))
	for _, b := range earned {
		types = append(types, b.BadgeType)
	}
	return types
}

func TestEvaluate(t *testing.T) {
	t.Run("first completed recording earns first_recording and first_completion", func(t *testing.T) {
		state := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 1},
			Recordings:   []models.Recording{completed(1, 1, 70, nil)},
			OldLevel:     1,
			Existing:     map[models.BadgeType]bool{},
		}

		earned := Evaluate(state)

		types := badgeTypes(earned)
		assert.ElementsMatch(t, []models.BadgeType{models.BadgeFirstRecording, models.BadgeFirstCompletion}, types)
	})

	t.Run("re-running on identical state never duplicates", func(t *testing.T) {
		state := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 1},
			Recordings:   []models.Recording{completed(1, 1, 97, nil)},
			OldLevel:     1,
			Existing:     map[models.BadgeType]bool{},
		}

		first := Evaluate(state)
		for _, b := range first {
			state.Existing[b.BadgeType] = true
		}
		second := Evaluate(state)

		assert.NotEmpty(t, first)
		assert.Empty(t, second)
	})

	t.Run("perfectionist fires once for a 95+ score", func(t *testing.T) {
		state := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 1},
			Recordings: []models.Recording{
				completed(1, 1, 97, nil),
				completed(2, 2, 98, floatPtr(1)),
			},
			OldLevel: 1,
			Existing: map[models.BadgeType]bool{},
		}

		earned := Evaluate(state)

		count := 0
		for _, b := range earned {
			if b.BadgeType == models.BadgePerfectionist {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("score below 95 does not earn perfectionist", func(t *testing.T) {
		state := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 1},
			Recordings:   []models.Recording{completed(1, 1, 94.9, nil)},
			OldLevel:     1,
			Existing:     map[models.BadgeType]bool{},
		}

		assert.NotContains(t, badgeTypes(Evaluate(state)), models.BadgePerfectionist)
	})

	t.Run("tenth completed recording earns both count badges when missed earlier", func(t *testing.T) {
		recordings := make([]models.Recording, 0, 10)
		for i := 1; i <= 10; i++ {
			recordings = append(recordings, completed(uint(i), i, 60, nil))
		}
		state := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 2},
			Recordings:   recordings,
			OldLevel:     2,
			Existing:     map[models.BadgeType]bool{},
		}

		types := badgeTypes(Evaluate(state))

		assert.Contains(t, types, models.BadgeFiveRecordings)
		assert.Contains(t, types, models.BadgeTenRecordings)
	})

	t.Run("failed recordings do not count toward recording badges", func(t *testing.T) {
		failed := models.Recording{
			Model:           gorm.Model{ID: 2},
			IterationNumber: 2,
			Status:          models.RecordingStatusFailed,
		}
		state := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 1},
			Recordings:   []models.Recording{completed(1, 1, 60, nil), failed},
			OldLevel:     1,
			Existing:     map[models.BadgeType]bool{},
		}

		types := badgeTypes(Evaluate(state))

		assert.Contains(t, types, models.BadgeFirstRecording)
	})

	t.Run("level_up fires only when the level increased this update", func(t *testing.T) {
		p := &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 2}
		state := &State{
			Presentation: p,
			Recordings:   []models.Recording{completed(1, 1, 60, nil)},
			OldLevel:     1,
			Existing:     map[models.BadgeType]bool{models.BadgeFirstRecording: true, models.BadgeFirstCompletion: true},
		}

		assert.Contains(t, badgeTypes(Evaluate(state)), models.BadgeLevelUp)

		state.OldLevel = 2
		state.Existing[models.BadgeLevelUp] = false
		assert.NotContains(t, badgeTypes(Evaluate(state)), models.BadgeLevelUp)
	})

	t.Run("max_level fires at level 5", func(t *testing.T) {
		state := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 5},
			Recordings:   nil,
			OldLevel:     4,
			Existing:     map[models.BadgeType]bool{},
		}

		types := badgeTypes(Evaluate(state))

		assert.Contains(t, types, models.BadgeMaxLevel)
		assert.Contains(t, types, models.BadgeLevelUp)
	})

	t.Run("improvement streak needs three consecutive positive deltas", func(t *testing.T) {
		streak := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 1},
			Recordings: []models.Recording{
				completed(1, 1, 50, nil),
				completed(2, 2, 55, floatPtr(5)),
				completed(3, 3, 60, floatPtr(5)),
				completed(4, 4, 66, floatPtr(6)),
			},
			OldLevel: 1,
			Existing: map[models.BadgeType]bool{},
		}
		assert.Contains(t, badgeTypes(Evaluate(streak)), models.BadgeImprovementStreak)

		broken := &State{
			Presentation: &models.Presentation{Model: gorm.Model{ID: 1}, CurrentLevel: 1},
			Recordings: []models.Recording{
				completed(1, 1, 50, nil),
				completed(2, 2, 55, floatPtr(5)),
				completed(3, 3, 52, floatPtr(-3)),
				completed(4, 4, 58, floatPtr(6)),
			},
			OldLevel: 1,
			Existing: map[models.BadgeType]bool{},
		}
		assert.NotContains(t, badgeTypes(Evaluate(broken)), models.BadgeImprovementStreak)
	})
}
