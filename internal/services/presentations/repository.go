package presentations

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

// Ensure Repository implements PresentationRepository interface
var _ PresentationRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, presentation *models.Presentation) error {
	if err := r.db.WithContext(ctx).Create(presentation).Error; err != nil {
		return fmt.Errorf("creating presentation: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Presentation, error) {
	var presentation models.Presentation
	if err := r.db.WithContext(ctx).
		Preload("Recordings", func(db *gorm.DB) *gorm.DB {
			return db.Order("iteration_number ASC")
		}).
		Preload("Badges", func(db *gorm.DB) *gorm.DB {
			return db.Order("earned_at ASC")
		}).
		First(&presentation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("presentation", id)
		}
		return nil, fmt.Errorf("getting presentation: %w", err)
	}
	return &presentation, nil
}

func (r *Repository) GetByUUID(ctx context.Context, uuid string) (*models.Presentation, error) {
	var presentation models.Presentation
	if err := r.db.WithContext(ctx).
		Preload("Recordings", func(db *gorm.DB) *gorm.DB {
			return db.Order("iteration_number ASC")
		}).
		Preload("Badges", func(db *gorm.DB) *gorm.DB {
			return db.Order("earned_at ASC")
		}).
		Where("uuid = ?", uuid).
		First(&presentation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("presentation", uuid)
		}
		return nil, fmt.Errorf("getting presentation: %w", err)
	}
	return &presentation, nil
}

func (r *Repository) List(ctx context.Context, page, limit int) ([]models.Presentation, int64, error) {
	var presentations []models.Presentation
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&models.Presentation{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting presentations: %w", err)
	}

	if err := query.
		Preload("Badges").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&presentations).Error; err != nil {
		return nil, 0, fmt.Errorf("listing presentations: %w", err)
	}

	return presentations, total, nil
}

func (r *Repository) Update(ctx context.Context, presentation *models.Presentation) error {
	result := r.db.WithContext(ctx).Save(presentation)
	if result.Error != nil {
		return fmt.Errorf("updating presentation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("presentation", presentation.ID)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	// SQLite does not always enforce the declared cascade, so children are
	// removed explicitly inside the same transaction.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("presentation_id = ?", id).Delete(&models.Recording{}).Error; err != nil {
			return fmt.Errorf("deleting recordings: %w", err)
		}
		if err := tx.Where("presentation_id = ?", id).Delete(&models.Badge{}).Error; err != nil {
			return fmt.Errorf("deleting badges: %w", err)
		}

		result := tx.Delete(&models.Presentation{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting presentation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return NewNotFoundError("presentation", id)
		}
		return nil
	})
	return err
}

func (r *Repository) GetRecordings(ctx context.Context, presentationID uint) ([]models.Recording, error) {
	var recordings []models.Recording
	if err := r.db.WithContext(ctx).
		Where("presentation_id = ?", presentationID).
		Order("iteration_number ASC").
		Find(&recordings).Error; err != nil {
		return nil, fmt.Errorf("getting recordings: %w", err)
	}
	return recordings, nil
}

func (r *Repository) UpdateLocked(ctx context.Context, id uint, fn func(tx *gorm.DB, p *models.Presentation) error) (*models.Presentation, error) {
	var presentation models.Presentation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&presentation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("presentation", id)
			}
			return fmt.Errorf("locking presentation: %w", err)
		}

		if err := fn(tx, &presentation); err != nil {
			return err
		}

		if err := tx.Save(&presentation).Error; err != nil {
			return fmt.Errorf("saving presentation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &presentation, nil
}
