package presentations

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary Get progress summary
// @Description Returns score history, trend, XP, level, and badge count across all recordings
// @Tags presentations
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} types.ProgressResponse "Progress summary"
// @Failure 400 {object} types.ErrorResponse "Invalid presentation ID"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/presentations/{id}/progress [get]
func GetProgress(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		progress, err := deps.PresentationService.GetProgress(c.Request.Context(), id)
		if err != nil {
			if presentations.IsNotFound(err) {
				types.SendNotFound(c, "Presentation not found")
				return
			}
			log.Printf("[ERROR] Failed to compute progress for presentation %d: %v", id, err)
			types.SendInternalError(c, "Failed to compute progress")
			return
		}

		types.SendSuccess(c, types.ProgressResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Progress:     progress,
		})
	}
}
