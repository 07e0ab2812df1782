package recordings

import (
	"context"
	"errors"
	"fmt"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements RecordingRepository interface
var _ RecordingRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to an open transaction.
func (r *Repository) WithTx(tx *gorm.DB) RecordingRepository {
	return &Repository{db: tx}
}

func (r *Repository) CreateWithIteration(ctx context.Context, recording *models.Recording) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the parent row so two concurrent uploads serialize and the
		// iteration numbers come out dense.
		var presentation models.Presentation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&presentation, recording.PresentationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("presentation", recording.PresentationID)
			}
			return fmt.Errorf("locking presentation: %w", err)
		}

		var count int64
		if err := tx.Model(&models.Recording{}).
			Where("presentation_id = ?", recording.PresentationID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("counting recordings: %w", err)
		}

		recording.IterationNumber = int(count) + 1

		if err := tx.Create(recording).Error; err != nil {
			return fmt.Errorf("creating recording: %w", err)
		}
		return nil
	})
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Recording, error) {
	var recording models.Recording
	if err := r.db.WithContext(ctx).First(&recording, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("recording", id)
		}
		return nil, fmt.Errorf("getting recording: %w", err)
	}
	return &recording, nil
}

func (r *Repository) GetByUUID(ctx context.Context, uuid string) (*models.Recording, error) {
	var recording models.Recording
	if err := r.db.WithContext(ctx).
		Where("uuid = ?", uuid).
		First(&recording).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("recording", uuid)
		}
		return nil, fmt.Errorf("getting recording: %w", err)
	}
	return &recording, nil
}

func (r *Repository) ListByPresentation(ctx context.Context, presentationID uint) ([]models.Recording, error) {
	var recordings []models.Recording
	if err := r.db.WithContext(ctx).
		Where("presentation_id = ?", presentationID).
		Order("iteration_number ASC").
		Find(&recordings).Error; err != nil {
		return nil, fmt.Errorf("listing recordings: %w", err)
	}
	return recordings, nil
}

func (r *Repository) Update(ctx context.Context, recording *models.Recording) error {
	result := r.db.WithContext(ctx).Save(recording)
	if result.Error != nil {
		return fmt.Errorf("updating recording: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("recording", recording.ID)
	}
	return nil
}
