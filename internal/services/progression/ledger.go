// Package progression owns the XP/level state of a presentation and the
// improvement computation between recording iterations. All mutations are
// additive: XP is never subtracted, and the level is re-derived from XP on
// every write so the two can never desync.
package progression

import (
	"math"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

// Config holds the tunable XP award amounts.
type Config struct {
	CreationXP       int
	DocumentXP       int
	CompletionXP     int
	ImprovementXPCap int
	LevelUpBonusXP   int
}

// DefaultConfig returns the stock XP award amounts.
func DefaultConfig() Config {
	return Config{
		CreationXP:       25,
		DocumentXP:       30,
		CompletionXP:     30,
		ImprovementXPCap: 25,
		LevelUpBonusXP:   50,
	}
}

// Award describes the outcome of one XP mutation.
type Award struct {
	XPAwarded int  `json:"xp_awarded"`
	TotalXP   int  `json:"total_xp"`
	OldLevel  int  `json:"old_level"`
	NewLevel  int  `json:"new_level"`
	LeveledUp bool `json:"leveled_up"`
}

// Ledger applies XP awards to a presentation. The caller is responsible for
// persisting the mutated presentation inside a serialized transaction; the
// ledger itself is pure computation.
type Ledger struct {
	cfg Config
}

// NewLedger creates a ledger with the given award amounts.
func NewLedger(cfg Config) *Ledger {
	if cfg.CompletionXP <= 0 {
		cfg = DefaultConfig()
	}
	return &Ledger{cfg: cfg}
}

// AwardCreation grants the fixed award for creating a presentation.
func (l *Ledger) AwardCreation(p *models.Presentation) Award {
	return l.apply(p, l.cfg.CreationXP)
}

// AwardDocument grants the fixed award for linking a reference document.
func (l *Ledger) AwardDocument(p *models.Presentation) Award {
	return l.apply(p, l.cfg.DocumentXP)
}

// AwardCompletion grants XP for a completed recording: the fixed completion
// award plus an improvement bonus when the delta is positive, scaled by the
// delta magnitude and capped.
func (l *Ledger) AwardCompletion(p *models.Presentation, improvementDelta *float64) Award {
	amount := l.cfg.CompletionXP
	amount += l.improvementBonus(improvementDelta)
	return l.apply(p, amount)
}

// improvementBonus scales with the improvement magnitude, capped.
func (l *Ledger) improvementBonus(delta *float64) int {
	if delta == nil || *delta <= 0 {
		return 0
	}
	bonus := int(math.Round(*delta * 2))
	if bonus > l.cfg.ImprovementXPCap {
		bonus = l.cfg.ImprovementXPCap
	}
	if bonus < 1 {
		bonus = 1
	}
	return bonus
}

// apply adds XP, re-derives the level, and grants the one-time level-up
// bonus when a new level is reached. The bonus is granted once per award
// call even if it pushes XP over yet another threshold; the next award
// re-derives from there.
func (l *Ledger) apply(p *models.Presentation, amount int) Award {
	if amount < 0 {
		amount = 0
	}

	oldLevel := models.LevelForXP(p.TotalXP)

	p.TotalXP += amount
	newLevel := models.LevelForXP(p.TotalXP)

	if newLevel > oldLevel {
		p.TotalXP += l.cfg.LevelUpBonusXP
		amount += l.cfg.LevelUpBonusXP
		newLevel = models.LevelForXP(p.TotalXP)
	}

	p.CurrentLevel = newLevel

	return Award{
		XPAwarded: amount,
		TotalXP:   p.TotalXP,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		LeveledUp: newLevel > oldLevel,
	}
}
