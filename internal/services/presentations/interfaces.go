package presentations

import (
	"context"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/progression"
	"gorm.io/gorm"
)

// CreateRequest carries the fields for creating a presentation.
type CreateRequest struct {
	Title       string
	Description string
}

// UpdateRequest carries the mutable fields of a presentation.
type UpdateRequest struct {
	Title       *string
	Description *string
}

// Document carries the extracted content of an uploaded reference document.
type Document struct {
	Filename  string
	Text      string
	KeyPoints []string
}

// PresentationService defines the business operations for presentations
type PresentationService interface {
	// CreatePresentation creates a presentation and grants the creation XP award.
	CreatePresentation(ctx context.Context, req CreateRequest) (*models.Presentation, *progression.Award, error)

	// GetPresentationByID retrieves a presentation with its recordings and badges.
	GetPresentationByID(ctx context.Context, id uint) (*models.Presentation, error)

	// GetPresentationByUUID retrieves a presentation by its public UUID.
	GetPresentationByUUID(ctx context.Context, uuid string) (*models.Presentation, error)

	// ListPresentations returns a page of presentations, newest first.
	ListPresentations(ctx context.Context, page, limit int) ([]models.Presentation, int64, error)

	// UpdatePresentation applies the provided fields to a presentation.
	UpdatePresentation(ctx context.Context, id uint, req UpdateRequest) (*models.Presentation, error)

	// DeletePresentation removes a presentation and everything it owns.
	DeletePresentation(ctx context.Context, id uint) error

	// AttachDocument links a reference document to a presentation. The
	// document XP award is granted only the first time a document is attached.
	AttachDocument(ctx context.Context, id uint, doc Document) (*models.Presentation, *progression.Award, error)

	// GetProgress computes the progress summary across all recordings.
	GetProgress(ctx context.Context, id uint) (*progression.Summary, error)
}

// PresentationRepository defines data access for presentations
type PresentationRepository interface {
	Create(ctx context.Context, presentation *models.Presentation) error
	GetByID(ctx context.Context, id uint) (*models.Presentation, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Presentation, error)
	List(ctx context.Context, page, limit int) ([]models.Presentation, int64, error)
	Update(ctx context.Context, presentation *models.Presentation) error
	Delete(ctx context.Context, id uint) error

	// GetRecordings returns the presentation's recordings ordered by iteration.
	GetRecordings(ctx context.Context, presentationID uint) ([]models.Recording, error)

	// UpdateLocked loads the presentation under a row lock, applies fn, and
	// persists the result, all inside one transaction. XP mutations go
	// through here so concurrent awards serialize instead of clobbering.
	// fn receives the transaction so related rows (recordings, badges) can
	// be written in the same unit; an fn error rolls everything back.
	UpdateLocked(ctx context.Context, id uint, fn func(tx *gorm.DB, p *models.Presentation) error) (*models.Presentation, error)
}
