package badges

import (
	"context"
	"errors"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

// ErrInvalidPresentationID is returned when a presentation ID is invalid
var ErrInvalidPresentationID = errors.New("invalid presentation ID")

// service implements Service
type service struct {
	repo Repository
}

// NewService creates a new badge service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListBadges returns all badges earned by a presentation
func (s *service) ListBadges(ctx context.Context, presentationID uint) ([]models.Badge, error) {
	if presentationID == 0 {
		return nil, ErrInvalidPresentationID
	}
	return s.repo.GetByPresentationID(ctx, presentationID)
}
