package recordings

import (
	"context"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/gorm"
)

// RecordingService defines the business operations for recordings
type RecordingService interface {
	// CreateRecording registers an uploaded recording for a presentation,
	// assigns the next iteration number, and enqueues its analysis job.
	CreateRecording(ctx context.Context, presentationID uint, audioPath string) (*models.Recording, *models.Job, error)

	// GetRecordingByID retrieves a recording.
	GetRecordingByID(ctx context.Context, id uint) (*models.Recording, error)

	// GetRecordingByUUID retrieves a recording by its public UUID.
	GetRecordingByUUID(ctx context.Context, uuid string) (*models.Recording, error)

	// ListByPresentation returns a presentation's recordings in iteration order.
	ListByPresentation(ctx context.Context, presentationID uint) ([]models.Recording, error)

	// Reanalyze resets a finished recording and enqueues a fresh analysis
	// job over the stored audio.
	Reanalyze(ctx context.Context, id uint) (*models.Recording, *models.Job, error)
}

// RecordingRepository defines data access for recordings
type RecordingRepository interface {
	// CreateWithIteration inserts the recording with the next iteration
	// number for its presentation, assigned inside one transaction so
	// concurrent uploads cannot collide.
	CreateWithIteration(ctx context.Context, recording *models.Recording) error

	GetByID(ctx context.Context, id uint) (*models.Recording, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Recording, error)
	ListByPresentation(ctx context.Context, presentationID uint) ([]models.Recording, error)
	Update(ctx context.Context, recording *models.Recording) error

	// WithTx returns a repository bound to an open transaction, so recording
	// writes can join a larger unit of work.
	WithTx(tx *gorm.DB) RecordingRepository
}
