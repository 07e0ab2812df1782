package presentations

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary List earned badges
// @Description Returns all badges the presentation has earned, in earn order
// @Tags presentations
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} types.BadgesResponse "Badge list"
// @Failure 400 {object} types.ErrorResponse "Invalid presentation ID"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/presentations/{id}/badges [get]
func GetBadges(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		// Confirm the presentation exists so missing IDs 404 instead of
		// returning an empty list
		if _, err := deps.PresentationService.GetPresentationByID(c.Request.Context(), id); err != nil {
			if presentations.IsNotFound(err) {
				types.SendNotFound(c, "Presentation not found")
				return
			}
			log.Printf("[ERROR] Failed to fetch presentation %d: %v", id, err)
			types.SendInternalError(c, "Failed to fetch presentation")
			return
		}

		badges, err := deps.BadgeService.ListBadges(c.Request.Context(), id)
		if err != nil {
			log.Printf("[ERROR] Failed to list badges for presentation %d: %v", id, err)
			types.SendInternalError(c, "Failed to list badges")
			return
		}

		types.SendSuccess(c, types.BadgesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Badges:       badges,
			Count:        len(badges),
		})
	}
}
