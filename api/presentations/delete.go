package presentations

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary Delete a presentation
// @Description Removes a presentation along with its recordings and badges
// @Tags presentations
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} types.BaseResponse "Presentation deleted"
// @Failure 400 {object} types.ErrorResponse "Invalid presentation ID"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Deletion failed"
// @Router /api/v1/presentations/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PresentationService.DeletePresentation(c.Request.Context(), id); err != nil {
			if presentations.IsNotFound(err) {
				types.SendNotFound(c, "Presentation not found")
				return
			}
			log.Printf("[ERROR] Failed to delete presentation %d: %v", id, err)
			types.SendInternalError(c, "Failed to delete presentation")
			return
		}

		// Stored audio is best-effort cleanup; the rows are already gone
		if deps.AudioStore != nil {
			if err := deps.AudioStore.DeleteAll(c.Request.Context(), id); err != nil {
				log.Printf("[ERROR] Failed to delete audio for presentation %d: %v", id, err)
			}
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Presentation deleted"})
	}
}
