package recordings

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/recordings"
)

// @Summary Get a recording
// @Description Returns a recording with its transcript, metrics, scores, and coaching feedback once analysis completes
// @Tags recordings
// @Produce json
// @Param id path int true "Recording ID"
// @Success 200 {object} types.RecordingResponse "Recording details"
// @Failure 400 {object} types.ErrorResponse "Invalid recording ID"
// @Failure 404 {object} types.ErrorResponse "Recording not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/recordings/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		recording, err := deps.RecordingService.GetRecordingByID(c.Request.Context(), id)
		if err != nil {
			if recordings.IsNotFound(err) {
				types.SendNotFound(c, "Recording not found")
				return
			}
			log.Printf("[ERROR] Failed to fetch recording %d: %v", id, err)
			types.SendInternalError(c, "Failed to fetch recording")
			return
		}

		types.SendSuccess(c, types.RecordingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recording:    recording,
		})
	}
}
