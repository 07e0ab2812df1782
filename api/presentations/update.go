package presentations

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// UpdateRequest is the request body for updating a presentation.
// Omitted fields keep their current values.
type UpdateRequest struct {
	Title       *string `json:"title" example:"Quarterly Business Review v2"`
	Description *string `json:"description" example:"Updated for the October board meeting"`
}

// @Summary Update a presentation
// @Description Updates the title and/or description of a presentation
// @Tags presentations
// @Accept json
// @Produce json
// @Param id path int true "Presentation ID"
// @Param presentation body UpdateRequest true "Fields to update"
// @Success 200 {object} types.PresentationResponse "Updated presentation"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Update failed"
// @Router /api/v1/presentations/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req UpdateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		presentation, err := deps.PresentationService.UpdatePresentation(c.Request.Context(), id, presentations.UpdateRequest{
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			switch {
			case presentations.IsNotFound(err):
				types.SendNotFound(c, "Presentation not found")
			case errors.Is(err, presentations.ErrInvalidInput):
				types.SendBadRequest(c, err.Error())
			default:
				log.Printf("[ERROR] Failed to update presentation %d: %v", id, err)
				types.SendInternalError(c, "Failed to update presentation")
			}
			return
		}

		types.SendSuccess(c, types.PresentationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Presentation updated"},
			Presentation: presentation,
		})
	}
}
