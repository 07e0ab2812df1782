package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestLedger_Awards(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("creation award", func(t *testing.T) {
		ledger := NewLedger(cfg)
		p := &models.Presentation{CurrentLevel: 1}

		award := ledger.AwardCreation(p)

		assert.Equal(t, cfg.CreationXP, award.XPAwarded)
		assert.Equal(t, cfg.CreationXP, p.TotalXP)
		assert.Equal(t, 1, p.CurrentLevel)
		assert.False(t, award.LeveledUp)
	})

	t.Run("completion with no prior iteration grants no bonus", func(t *testing.T) {
		ledger := NewLedger(cfg)
		p := &models.Presentation{CurrentLevel: 1}

		award := ledger.AwardCompletion(p, nil)

		assert.Equal(t, cfg.CompletionXP, award.XPAwarded)
	})

	t.Run("positive improvement grants a capped bonus", func(t *testing.T) {
		ledger := NewLedger(cfg)

		small := &models.Presentation{CurrentLevel: 1}
		smallAward := ledger.AwardCompletion(small, floatPtr(3))
		assert.Equal(t, cfg.CompletionXP+6, smallAward.XPAwarded)

		huge := &models.Presentation{CurrentLevel: 1}
		hugeAward := ledger.AwardCompletion(huge, floatPtr(90))
		assert.Equal(t, cfg.CompletionXP+cfg.ImprovementXPCap, hugeAward.XPAwarded)
	})

	t.Run("negative improvement never subtracts", func(t *testing.T) {
		ledger := NewLedger(cfg)
		p := &models.Presentation{CurrentLevel: 1, TotalXP: 40}

		award := ledger.AwardCompletion(p, floatPtr(-20))

		assert.Equal(t, cfg.CompletionXP, award.XPAwarded)
		assert.Equal(t, 40+cfg.CompletionXP, p.TotalXP)
	})

	t.Run("XP is monotonically non-decreasing", func(t *testing.T) {
		ledger := NewLedger(cfg)
		p := &models.Presentation{CurrentLevel: 1}

		deltas := []*float64{nil, floatPtr(15), floatPtr(-5), floatPtr(0), floatPtr(40)}
		prevXP := 0
		for _, d := range deltas {
			ledger.AwardCompletion(p, d)
			assert.GreaterOrEqual(t, p.TotalXP, prevXP)
			prevXP = p.TotalXP
		}
	})

	t.Run("level up grants the one-time bonus and re-derives level", func(t *testing.T) {
		ledger := NewLedger(cfg)
		p := &models.Presentation{CurrentLevel: 1, TotalXP: 90}

		award := ledger.AwardCompletion(p, nil) // 90 + 30 crosses 100

		assert.True(t, award.LeveledUp)
		assert.Equal(t, 2, award.NewLevel)
		assert.Equal(t, 90+cfg.CompletionXP+cfg.LevelUpBonusXP, p.TotalXP)
		assert.Equal(t, models.LevelForXP(p.TotalXP), p.CurrentLevel)
	})

	t.Run("level caps at 5", func(t *testing.T) {
		ledger := NewLedger(cfg)
		p := &models.Presentation{CurrentLevel: 5, TotalXP: 1000}

		award := ledger.AwardCompletion(p, floatPtr(10))

		assert.Equal(t, 5, award.NewLevel)
		assert.False(t, award.LeveledUp)
		assert.Equal(t, 0, p.XPToNextLevel())
	})
}

func TestLevelForXP(t *testing.T) {
	cases := map[int]int{
		0: 1, 99: 1,
		100: 2, 199: 2,
		200: 3, 299: 3,
		300: 4, 399: 4,
		400: 5, 1000: 5,
	}
	for xp, level := range cases {
		assert.Equal(t, level, models.LevelForXP(xp), "xp=%d", xp)
	}

	// Level is non-decreasing in XP
	prev := 0
	for xp := 0; xp <= 600; xp += 17 {
		level := models.LevelForXP(xp)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestLevelNames(t *testing.T) {
	p := &models.Presentation{CurrentLevel: 1}
	assert.Equal(t, "Novice", p.LevelName())

	p.CurrentLevel = 5
	assert.Equal(t, "Presentation Master", p.LevelName())
}
