// Package scoring converts raw speech metrics into 0-100 sub-scores and a
// weighted overall score. Scoring is deterministic, synchronous, pure
// computation; it never errors on degenerate input.
package scoring

// Config holds the tunable scoring parameters. Defaults are applied by
// DefaultConfig; the serve command overrides them from application config.
type Config struct {
	IdealWPMLow    float64
	IdealWPMHigh   float64
	PacingWeight   float64
	ClarityWeight  float64
	CoverageWeight float64
}

// DefaultConfig returns the stock scoring parameters.
func DefaultConfig() Config {
	return Config{
		IdealWPMLow:    120,
		IdealWPMHigh:   160,
		PacingWeight:   0.4,
		ClarityWeight:  0.4,
		CoverageWeight: 0.2,
	}
}

// Input is the raw metric set for one recording.
type Input struct {
	WordsPerMinute  float64
	FillerWordCount int
	TotalWords      int
	// CoverageScore is set only when the presentation has a reference
	// document; it is passed through to the output unchanged.
	CoverageScore *float64
}

// Scores is the computed sub-score set.
type Scores struct {
	Pacing   float64
	Clarity  float64
	Overall  float64
	Coverage *float64
}

// Scorer computes sub-scores from raw metrics.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given parameters.
func NewScorer(cfg Config) *Scorer {
	if cfg.IdealWPMLow <= 0 || cfg.IdealWPMHigh <= cfg.IdealWPMLow {
		cfg.IdealWPMLow = DefaultConfig().IdealWPMLow
		cfg.IdealWPMHigh = DefaultConfig().IdealWPMHigh
	}
	if cfg.PacingWeight <= 0 && cfg.ClarityWeight <= 0 {
		cfg = DefaultConfig()
	}
	return &Scorer{cfg: cfg}
}

// Score computes all sub-scores for one recording's metrics.
// An empty transcript (zero words) yields all zeros.
func (s *Scorer) Score(in Input) Scores {
	if in.TotalWords <= 0 {
		return Scores{Coverage: in.CoverageScore}
	}

	pacing := s.PacingScore(in.WordsPerMinute)
	clarity := s.ClarityScore(in.FillerWordCount, in.TotalWords)
	overall := s.overallScore(pacing, clarity, in.CoverageScore)

	return Scores{
		Pacing:   pacing,
		Clarity:  clarity,
		Overall:  overall,
		Coverage: in.CoverageScore,
	}
}

// PacingScore scores speaking rate: 100 inside the ideal band, decreasing
// monotonically with distance outside it. Speaking too fast is penalized
// more gently than the raw distance would suggest, since fast speakers
// remain intelligible longer than very slow ones stay engaging.
func (s *Scorer) PacingScore(wpm float64) float64 {
	if wpm <= 0 {
		return 0
	}

	switch {
	case wpm >= s.cfg.IdealWPMLow && wpm <= s.cfg.IdealWPMHigh:
		return 100
	case wpm < s.cfg.IdealWPMLow:
		return clamp(100 - (s.cfg.IdealWPMLow-wpm)*1.0)
	default:
		return clamp(100 - (wpm-s.cfg.IdealWPMHigh)*0.75)
	}
}

// ClarityScore scores filler-word density (count / total words), decreasing
// monotonically as density grows. Under 2% density is considered clean speech.
func (s *Scorer) ClarityScore(fillerCount, totalWords int) float64 {
	if totalWords <= 0 {
		return 0
	}
	if fillerCount < 0 {
		fillerCount = 0
	}

	density := float64(fillerCount) / float64(totalWords) * 100

	switch {
	case density <= 2:
		return 100
	case density <= 5:
		return clamp(100 - (density-2)*5)
	case density <= 10:
		return clamp(85 - (density-5)*5)
	default:
		return clamp(60 - (density-10)*3)
	}
}

// overallScore blends the sub-scores. When coverage is absent the coverage
// weight is dropped and the remaining weights renormalize, so the overall
// score stays in [0,100] either way.
func (s *Scorer) overallScore(pacing, clarity float64, coverage *float64) float64 {
	pw, cw, vw := s.cfg.PacingWeight, s.cfg.ClarityWeight, s.cfg.CoverageWeight

	total := pw + cw
	weighted := pacing*pw + clarity*cw
	if coverage != nil {
		total += vw
		weighted += clamp(*coverage) * vw
	}
	if total <= 0 {
		return 0
	}

	return clamp(weighted / total)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
