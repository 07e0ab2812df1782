package recordings

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary List a presentation's recordings
// @Description Returns all recordings for a presentation in iteration order
// @Tags recordings
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} types.RecordingsResponse "Recording list"
// @Failure 400 {object} types.ErrorResponse "Invalid presentation ID"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Listing failed"
// @Router /api/v1/presentations/{id}/recordings [get]
func ListByPresentation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		presentationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if _, err := deps.PresentationService.GetPresentationByID(c.Request.Context(), presentationID); err != nil {
			if presentations.IsNotFound(err) {
				types.SendNotFound(c, "Presentation not found")
				return
			}
			log.Printf("[ERROR] Failed to fetch presentation %d: %v", presentationID, err)
			types.SendInternalError(c, "Failed to fetch presentation")
			return
		}

		list, err := deps.RecordingService.ListByPresentation(c.Request.Context(), presentationID)
		if err != nil {
			log.Printf("[ERROR] Failed to list recordings for presentation %d: %v", presentationID, err)
			types.SendInternalError(c, "Failed to list recordings")
			return
		}

		types.SendSuccess(c, types.RecordingsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recordings:   list,
			Count:        len(list),
		})
	}
}
