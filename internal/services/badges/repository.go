package badges

import (
	"context"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/gorm"
)

// repository implements Repository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new badge repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to an open transaction.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create saves a new badge
func (r *repository) Create(ctx context.Context, badge *models.Badge) error {
	return r.db.WithContext(ctx).Create(badge).Error
}

// GetByPresentationID returns all badges for a presentation ordered by earn time
func (r *repository) GetByPresentationID(ctx context.Context, presentationID uint) ([]models.Badge, error) {
	var found []models.Badge
	err := r.db.WithContext(ctx).
		Where("presentation_id = ?", presentationID).
		Order("earned_at ASC").
		Find(&found).Error
	return found, err
}

// ExistingTypes returns the set of badge types already earned
func (r *repository) ExistingTypes(ctx context.Context, presentationID uint) (map[models.BadgeType]bool, error) {
	var types []models.BadgeType
	err := r.db.WithContext(ctx).
		Model(&models.Badge{}).
		Where("presentation_id = ?", presentationID).
		Pluck("badge_type", &types).Error
	if err != nil {
		return nil, err
	}

	existing := make(map[models.BadgeType]bool, len(types))
	for _, t := range types {
		existing[t] = true
	}
	return existing, nil
}
