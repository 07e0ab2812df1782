package recordings

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
)

// Service implements the RecordingService interface with business logic
type Service struct {
	repository RecordingRepository
	jobService jobs.Service
}

// NewService creates a new recording service
func NewService(repository RecordingRepository, jobService jobs.Service) *Service {
	return &Service{
		repository: repository,
		jobService: jobService,
	}
}

func (s *Service) CreateRecording(ctx context.Context, presentationID uint, audioPath string) (*models.Recording, *models.Job, error) {
	if presentationID == 0 {
		return nil, nil, NewValidationError("presentation_id", "presentation id is required")
	}
	if strings.TrimSpace(audioPath) == "" {
		return nil, nil, NewValidationError("audio", "audio file is required")
	}

	recording := &models.Recording{
		UUID:           uuid.NewString(),
		PresentationID: presentationID,
		AudioPath:      audioPath,
		Status:         models.RecordingStatusPending,
	}

	if err := s.repository.CreateWithIteration(ctx, recording); err != nil {
		return nil, nil, err
	}

	job, err := s.enqueueAnalysis(ctx, recording)
	if err != nil {
		// The recording row exists either way; mark it failed so it does
		// not hang in pending forever.
		recording.Status = models.RecordingStatusFailed
		recording.ErrorMessage = "failed to queue analysis"
		if updateErr := s.repository.Update(ctx, recording); updateErr != nil {
			log.Printf("[ERROR] Failed to mark recording %d as failed: %v", recording.ID, updateErr)
		}
		return nil, nil, err
	}

	log.Printf("[DEBUG] Created recording %d (iteration %d) for presentation %d, job %d",
		recording.ID, recording.IterationNumber, presentationID, job.ID)
	return recording, job, nil
}

func (s *Service) GetRecordingByID(ctx context.Context, id uint) (*models.Recording, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *Service) GetRecordingByUUID(ctx context.Context, uuid string) (*models.Recording, error) {
	if strings.TrimSpace(uuid) == "" {
		return nil, NewValidationError("uuid", "uuid is required")
	}
	return s.repository.GetByUUID(ctx, uuid)
}

func (s *Service) ListByPresentation(ctx context.Context, presentationID uint) ([]models.Recording, error) {
	return s.repository.ListByPresentation(ctx, presentationID)
}

func (s *Service) Reanalyze(ctx context.Context, id uint) (*models.Recording, *models.Job, error) {
	recording, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !recording.IsTerminal() {
		return nil, nil, ErrNotReanalyzable
	}

	// Reset analysis output; identity fields (iteration, audio) and the
	// completion XP marker stay, so a re-run cannot award twice.
	recording.Status = models.RecordingStatusPending
	recording.Transcription = ""
	recording.DurationSeconds = 0
	recording.TotalWords = 0
	recording.FillerWordCount = 0
	recording.FillerWords = nil
	recording.WordsPerMinute = 0
	recording.PacingScore = 0
	recording.ClarityScore = 0
	recording.OverallScore = 0
	recording.CoverageScore = nil
	recording.MissedKeyPoints = nil
	recording.ImprovementDelta = nil
	recording.ImprovementPercent = ""
	recording.AIFeedback = ""
	recording.ErrorMessage = ""

	if err := s.repository.Update(ctx, recording); err != nil {
		return nil, nil, err
	}

	job, err := s.enqueueAnalysis(ctx, recording)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[DEBUG] Reanalyzing recording %d, job %d", recording.ID, job.ID)
	return recording, job, nil
}

func (s *Service) enqueueAnalysis(ctx context.Context, recording *models.Recording) (*models.Job, error) {
	return s.jobService.EnqueueUniqueJob(ctx, models.JobTypeAudioAnalysis, models.JobPayload{
		"recording_id":    recording.ID,
		"presentation_id": recording.PresentationID,
	}, "recording_id")
}
