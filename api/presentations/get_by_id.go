package presentations

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary Get a presentation
// @Description Returns a presentation with its recordings and badges
// @Tags presentations
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} types.PresentationResponse "Presentation details"
// @Failure 400 {object} types.ErrorResponse "Invalid presentation ID"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/presentations/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		presentation, err := deps.PresentationService.GetPresentationByID(c.Request.Context(), id)
		if err != nil {
			if presentations.IsNotFound(err) {
				types.SendNotFound(c, "Presentation not found")
				return
			}
			log.Printf("[ERROR] Failed to fetch presentation %d: %v", id, err)
			types.SendInternalError(c, "Failed to fetch presentation")
			return
		}

		types.SendSuccess(c, types.PresentationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Presentation: presentation,
		})
	}
}
