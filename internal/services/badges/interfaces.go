package badges

import (
	"context"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/gorm"
)

// Service defines the interface for badge operations
type Service interface {
	// ListBadges returns all badges earned by a presentation
	ListBadges(ctx context.Context, presentationID uint) ([]models.Badge, error)
}

// Repository defines the interface for badge persistence
type Repository interface {
	// Create saves a new badge; duplicate (presentation, type) pairs fail
	// the unique index
	Create(ctx context.Context, badge *models.Badge) error

	// GetByPresentationID returns all badges for a presentation ordered by
	// earn time
	GetByPresentationID(ctx context.Context, presentationID uint) ([]models.Badge, error)

	// ExistingTypes returns the set of badge types already earned
	ExistingTypes(ctx context.Context, presentationID uint) (map[models.BadgeType]bool, error)

	// WithTx returns a repository bound to an open transaction, so badge
	// inserts can join a larger unit of work.
	WithTx(tx *gorm.DB) Repository
}
