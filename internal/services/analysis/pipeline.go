// Package analysis runs the full processing pipeline for one recording:
// transcription, speech metrics, content coverage, scoring, improvement
// tracking, coaching feedback, and finally XP and badge awards. The
// pipeline runs inside background workers; handlers only enqueue it.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/badges"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/coach"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/documents"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/progression"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/recordings"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/scoring"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/transcription"
	"github.com/thechaitanyaanand/preseguide-api/pkg/speech"
	"gorm.io/gorm"
)

// Progress checkpoints reported to the owning job as the pipeline advances.
const (
	progressClaimed     = 10
	progressTranscribed = 40
	progressScored      = 70
	progressFeedback    = 90
)

// Pipeline orchestrates the analysis of a single recording.
type Pipeline struct {
	recordings    recordings.RecordingRepository
	presentations presentations.PresentationRepository
	badgeRepo     badges.Repository
	jobService    jobs.Service
	transcriber   transcription.Transcriber
	coach         *coach.Service
	scorer        *scoring.Scorer
	ledger        *progression.Ledger
}

// NewPipeline creates an analysis pipeline with all its collaborators.
func NewPipeline(
	recordingRepo recordings.RecordingRepository,
	presentationRepo presentations.PresentationRepository,
	badgeRepo badges.Repository,
	jobService jobs.Service,
	transcriber transcription.Transcriber,
	coachService *coach.Service,
	scorer *scoring.Scorer,
	ledger *progression.Ledger,
) *Pipeline {
	return &Pipeline{
		recordings:    recordingRepo,
		presentations: presentationRepo,
		badgeRepo:     badgeRepo,
		jobService:    jobService,
		transcriber:   transcriber,
		coach:         coachService,
		scorer:        scorer,
		ledger:        ledger,
	}
}

// Analyze processes one recording end to end and returns the job result.
// Errors are structured so the job queue can classify them: missing
// resources fail permanently, transcription and processing errors retry.
func (p *Pipeline) Analyze(ctx context.Context, jobID, recordingID uint) (models.JobResult, error) {
	recording, err := p.recordings.GetByID(ctx, recordingID)
	if err != nil {
		if recordings.IsNotFound(err) {
			return nil, models.NewNotFoundError("RECORDING_NOT_FOUND",
				fmt.Sprintf("recording %d not found", recordingID), "", err)
		}
		return nil, models.NewProcessingError("RECORDING_LOAD_FAILED",
			"failed to load recording", err.Error(), err)
	}

	presentation, err := p.presentations.GetByID(ctx, recording.PresentationID)
	if err != nil {
		if presentations.IsNotFound(err) {
			return nil, models.NewNotFoundError("PRESENTATION_NOT_FOUND",
				fmt.Sprintf("presentation %d not found", recording.PresentationID), "", err)
		}
		return nil, models.NewProcessingError("PRESENTATION_LOAD_FAILED",
			"failed to load presentation", err.Error(), err)
	}

	recording.Status = models.RecordingStatusProcessing
	recording.ErrorMessage = ""
	if err := p.recordings.Update(ctx, recording); err != nil {
		return nil, models.NewProcessingError("RECORDING_UPDATE_FAILED",
			"failed to mark recording as processing", err.Error(), err)
	}
	p.reportProgress(ctx, jobID, progressClaimed)

	result, err := p.transcribe(ctx, recording)
	if err != nil {
		p.markFailed(ctx, recording, "transcription failed")
		return nil, models.NewTranscriptionError("TRANSCRIPTION_FAILED",
			"failed to transcribe audio", err.Error(), err)
	}
	p.reportProgress(ctx, jobID, progressTranscribed)

	p.applyMetrics(ctx, recording, presentation, result)
	p.reportProgress(ctx, jobID, progressScored)

	if p.coach != nil {
		recording.AIFeedback = p.coach.GenerateFeedback(ctx, coach.FeedbackInput{
			DurationSeconds: recording.DurationSeconds,
			TotalWords:      recording.TotalWords,
			WordsPerMinute:  recording.WordsPerMinute,
			FillerWordCount: recording.FillerWordCount,
			FillerWords:     recording.FillerWords,
			PacingScore:     recording.PacingScore,
			ClarityScore:    recording.ClarityScore,
			OverallScore:    recording.OverallScore,
			Transcription:   recording.Transcription,
		})
	}
	p.reportProgress(ctx, jobID, progressFeedback)

	award, err := p.finalize(ctx, recording)
	if err != nil {
		return nil, models.NewProcessingError("RECORDING_FINALIZE_FAILED",
			"failed to persist analysis results", err.Error(), err)
	}

	jobResult := models.JobResult{
		"recording_id":    recording.ID,
		"presentation_id": recording.PresentationID,
		"iteration":       recording.IterationNumber,
		"overall_score":   recording.OverallScore,
		"total_words":     recording.TotalWords,
	}
	if award != nil {
		jobResult["xp_awarded"] = award.XPAwarded
		jobResult["new_level"] = award.NewLevel
	}

	log.Printf("[DEBUG] Analysis complete for recording %d: score %.1f (%d words)",
		recording.ID, recording.OverallScore, recording.TotalWords)
	return jobResult, nil
}

// transcribe runs speech-to-text on the recording's audio. A silent
// recording is not an error; it analyzes as an empty transcript.
func (p *Pipeline) transcribe(ctx context.Context, recording *models.Recording) (*transcription.Result, error) {
	result, err := p.transcriber.Transcribe(ctx, recording.AudioPath)
	if err != nil {
		if errors.Is(err, transcription.ErrNoSpeech) {
			return &transcription.Result{}, nil
		}
		return nil, err
	}
	return result, nil
}

// applyMetrics fills the recording's metric and score fields from the
// transcript. An empty transcript yields zero scores across the board.
func (p *Pipeline) applyMetrics(ctx context.Context, recording *models.Recording, presentation *models.Presentation, result *transcription.Result) {
	recording.Transcription = result.Text
	recording.DurationSeconds = result.Duration
	recording.TotalWords = speech.WordCount(result.Text)
	recording.WordsPerMinute = speech.WordsPerMinute(recording.TotalWords, result.Duration)

	occurrences := speech.DetectFillerWords(result.Text)
	recording.FillerWordCount = len(occurrences)
	recording.FillerWords = make(models.FillerWordList, 0, len(occurrences))
	for _, occ := range occurrences {
		recording.FillerWords = append(recording.FillerWords, models.FillerWord{
			Word:     occ.Word,
			Position: occ.Position,
			Context:  occ.Context,
		})
	}

	var coverage *float64
	if presentation.HasDocument() {
		coverageResult := documents.Coverage(result.Text, presentation.KeyPoints)
		coverage = &coverageResult.Score
		recording.CoverageScore = &coverageResult.Score
		recording.MissedKeyPoints = coverageResult.MissedPoints
	}

	scores := p.scorer.Score(scoring.Input{
		WordsPerMinute:  recording.WordsPerMinute,
		FillerWordCount: recording.FillerWordCount,
		TotalWords:      recording.TotalWords,
		CoverageScore:   coverage,
	})
	recording.PacingScore = scores.Pacing
	recording.ClarityScore = scores.Clarity
	recording.OverallScore = scores.Overall

	history, err := p.recordings.ListByPresentation(ctx, recording.PresentationID)
	if err != nil {
		log.Printf("[ERROR] Failed to load recording history for presentation %d: %v", recording.PresentationID, err)
		history = nil
	}
	recording.ImprovementDelta = progression.ImprovementDelta(recording, history)
	priorScore := 0.0
	if recording.ImprovementDelta != nil {
		priorScore = recording.OverallScore - *recording.ImprovementDelta
	}
	recording.ImprovementPercent = progression.FormatImprovement(recording.ImprovementDelta, priorScore)
}

// finalize writes the completed recording, the XP award, and any newly
// earned badges as one unit under the presentation row lock. A failure
// rolls the whole unit back, the recording is left unfinished, and the
// job retries everything coherently.
//
// Completion XP is granted only the first time a recording completes; a
// re-analysis of the same upload keeps its earlier award and only
// refreshes the scores.
func (p *Pipeline) finalize(ctx context.Context, recording *models.Recording) (*progression.Award, error) {
	var award *progression.Award
	var earned []models.Badge

	presentation, err := p.presentations.UpdateLocked(ctx, recording.PresentationID, func(tx *gorm.DB, pr *models.Presentation) error {
		oldLevel := pr.CurrentLevel
		recording.Status = models.RecordingStatusCompleted
		if !recording.XPAwarded {
			a := p.ledger.AwardCompletion(pr, recording.ImprovementDelta)
			award = &a
			oldLevel = a.OldLevel
			recording.XPAwarded = true
		}
		if err := p.recordings.WithTx(tx).Update(ctx, recording); err != nil {
			return err
		}

		history, err := p.recordings.WithTx(tx).ListByPresentation(ctx, pr.ID)
		if err != nil {
			return err
		}

		badgeRepo := p.badgeRepo.WithTx(tx)
		existing, err := badgeRepo.ExistingTypes(ctx, pr.ID)
		if err != nil {
			return err
		}

		earned = badges.Evaluate(&badges.State{
			Presentation: pr,
			Recordings:   history,
			OldLevel:     oldLevel,
			Existing:     existing,
		})
		for i := range earned {
			if err := badgeRepo.Create(ctx, &earned[i]); err != nil {
				return fmt.Errorf("saving badge %s: %w", earned[i].BadgeType, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if award != nil && award.LeveledUp {
		log.Printf("[DEBUG] Presentation %d reached level %d (%d XP)",
			presentation.ID, award.NewLevel, award.TotalXP)
	}
	for i := range earned {
		log.Printf("[DEBUG] Presentation %d earned badge: %s", presentation.ID, earned[i].BadgeType)
	}
	return award, nil
}

// markFailed records a terminal failure on the recording itself so API
// clients see the failure without inspecting the job queue.
func (p *Pipeline) markFailed(ctx context.Context, recording *models.Recording, message string) {
	recording.Status = models.RecordingStatusFailed
	recording.ErrorMessage = message
	if err := p.recordings.Update(ctx, recording); err != nil {
		log.Printf("[ERROR] Failed to mark recording %d as failed: %v", recording.ID, err)
	}
}

func (p *Pipeline) reportProgress(ctx context.Context, jobID uint, progress int) {
	if p.jobService == nil {
		return
	}
	if err := p.jobService.UpdateProgress(ctx, jobID, progress); err != nil {
		log.Printf("[ERROR] Failed to update progress for job %d: %v", jobID, err)
	}
}
