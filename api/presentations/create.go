package presentations

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// CreateRequest is the request body for creating a presentation
type CreateRequest struct {
	Title       string `json:"title" binding:"required" example:"Quarterly Business Review"`
	Description string `json:"description" example:"Q3 results for the leadership team"`
}

// @Summary Create a presentation
// @Description Creates a new presentation project and grants the creation XP award
// @Tags presentations
// @Accept json
// @Produce json
// @Param presentation body CreateRequest true "Presentation details"
// @Success 201 {object} types.PresentationResponse "Presentation created"
// @Failure 400 {object} types.ErrorResponse "Invalid request body"
// @Failure 500 {object} types.ErrorResponse "Creation failed"
// @Router /api/v1/presentations [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		presentation, award, err := deps.PresentationService.CreatePresentation(c.Request.Context(), presentations.CreateRequest{
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			if errors.Is(err, presentations.ErrInvalidInput) {
				types.SendBadRequest(c, err.Error())
				return
			}
			log.Printf("[ERROR] Failed to create presentation: %v", err)
			types.SendInternalError(c, "Failed to create presentation")
			return
		}

		types.SendCreated(c, types.PresentationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Presentation created"},
			Presentation: presentation,
			Award:        award,
		})
	}
}
