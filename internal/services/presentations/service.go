package presentations

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/progression"
	"gorm.io/gorm"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// Service implements the PresentationService interface with business logic
type Service struct {
	repository PresentationRepository
	ledger     *progression.Ledger
}

// NewService creates a new presentation service
func NewService(repository PresentationRepository, ledger *progression.Ledger) *Service {
	return &Service{
		repository: repository,
		ledger:     ledger,
	}
}

func (s *Service) CreatePresentation(ctx context.Context, req CreateRequest) (*models.Presentation, *progression.Award, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, nil, NewValidationError("title", "title is required")
	}
	if len(title) > maxTitleLength {
		return nil, nil, NewValidationError("title", "title is too long")
	}
	if len(req.Description) > maxDescriptionLength {
		return nil, nil, NewValidationError("description", "description is too long")
	}

	presentation := &models.Presentation{
		UUID:         uuid.NewString(),
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		CurrentLevel: 1,
	}

	award := s.ledger.AwardCreation(presentation)

	if err := s.repository.Create(ctx, presentation); err != nil {
		return nil, nil, err
	}

	log.Printf("[DEBUG] Created presentation %d (%s) with %d XP", presentation.ID, presentation.UUID, presentation.TotalXP)
	return presentation, &award, nil
}

func (s *Service) GetPresentationByID(ctx context.Context, id uint) (*models.Presentation, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *Service) GetPresentationByUUID(ctx context.Context, uuid string) (*models.Presentation, error) {
	if strings.TrimSpace(uuid) == "" {
		return nil, NewValidationError("uuid", "uuid is required")
	}
	return s.repository.GetByUUID(ctx, uuid)
}

func (s *Service) ListPresentations(ctx context.Context, page, limit int) ([]models.Presentation, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repository.List(ctx, page, limit)
}

func (s *Service) UpdatePresentation(ctx context.Context, id uint, req UpdateRequest) (*models.Presentation, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, NewValidationError("title", "title cannot be empty")
		}
		if len(title) > maxTitleLength {
			return nil, NewValidationError("title", "title is too long")
		}
	}
	if req.Description != nil && len(*req.Description) > maxDescriptionLength {
		return nil, NewValidationError("description", "description is too long")
	}

	return s.repository.UpdateLocked(ctx, id, func(_ *gorm.DB, p *models.Presentation) error {
		if req.Title != nil {
			p.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			p.Description = strings.TrimSpace(*req.Description)
		}
		return nil
	})
}

func (s *Service) DeletePresentation(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *Service) AttachDocument(ctx context.Context, id uint, doc Document) (*models.Presentation, *progression.Award, error) {
	if strings.TrimSpace(doc.Text) == "" {
		return nil, nil, NewValidationError("document", "document has no extractable text")
	}

	var award *progression.Award
	presentation, err := s.repository.UpdateLocked(ctx, id, func(_ *gorm.DB, p *models.Presentation) error {
		firstAttach := !p.HasDocument()

		p.DocumentName = doc.Filename
		p.DocumentText = doc.Text
		p.KeyPoints = models.StringList(doc.KeyPoints)

		if firstAttach {
			a := s.ledger.AwardDocument(p)
			award = &a
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if award != nil {
		log.Printf("[DEBUG] Document %q attached to presentation %d, awarded %d XP", doc.Filename, id, award.XPAwarded)
	} else {
		log.Printf("[DEBUG] Document %q replaced on presentation %d, no XP awarded", doc.Filename, id)
	}
	return presentation, award, nil
}

func (s *Service) GetProgress(ctx context.Context, id uint) (*progression.Summary, error) {
	presentation, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recordings, err := s.repository.GetRecordings(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := progression.Summarize(presentation, recordings)
	return &summary, nil
}
