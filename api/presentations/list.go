package presentations

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
)

// @Summary List presentations
// @Description Returns a page of presentations, newest first
// @Tags presentations
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} types.PresentationsResponse "Presentation list"
// @Failure 500 {object} types.ErrorResponse "Listing failed"
// @Router /api/v1/presentations [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := types.ParsePagination(c)

		presentations, total, err := deps.PresentationService.ListPresentations(c.Request.Context(), page, limit)
		if err != nil {
			log.Printf("[ERROR] Failed to list presentations: %v", err)
			types.SendInternalError(c, "Failed to list presentations")
			return
		}

		types.SendSuccess(c, types.PresentationsResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			Presentations: presentations,
			Count:         len(presentations),
			Total:         total,
			Page:          page,
			Limit:         limit,
		})
	}
}
