package progression

import (
	"fmt"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

// ImprovementNA is the improvement-percentage value for a first iteration.
const ImprovementNA = "N/A"

// ImprovementDelta computes the signed score delta for a recording versus
// the most recent *completed* prior iteration, skipping failed ones.
// Nil when there is no prior completed iteration.
func ImprovementDelta(current *models.Recording, history []models.Recording) *float64 {
	var prior *models.Recording
	for i := range history {
		r := &history[i]
		if r.ID == current.ID {
			continue
		}
		if r.Status != models.RecordingStatusCompleted {
			continue
		}
		if r.IterationNumber >= current.IterationNumber {
			continue
		}
		if prior == nil || r.IterationNumber > prior.IterationNumber {
			prior = r
		}
	}

	if prior == nil {
		return nil
	}

	delta := current.OverallScore - prior.OverallScore
	return &delta
}

// FormatImprovement renders the delta as a signed percentage relative to
// the prior score: "N/A" when delta is nil, "0.0%" when the prior score is
// zero (avoiding a division by zero) or the change is exactly zero, else
// e.g. "+12.5%" or "-3.0%".
func FormatImprovement(delta *float64, priorScore float64) string {
	if delta == nil {
		return ImprovementNA
	}
	if priorScore == 0 {
		return "0.0%"
	}

	pct := *delta / priorScore * 100
	if pct == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", pct)
}
