package recordings

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/recordings"
)

// @Summary Re-run analysis
// @Description Resets a finished recording and queues a fresh analysis over its stored audio. Recordings still in progress cannot be reanalyzed.
// @Tags recordings
// @Produce json
// @Param id path int true "Recording ID"
// @Success 202 {object} types.RecordingResponse "Reanalysis queued"
// @Failure 400 {object} types.ErrorResponse "Invalid recording ID"
// @Failure 404 {object} types.ErrorResponse "Recording not found"
// @Failure 409 {object} types.ErrorResponse "Recording is still being analyzed"
// @Failure 500 {object} types.ErrorResponse "Queueing failed"
// @Router /api/v1/recordings/{id}/reanalyze [post]
func Reanalyze(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		recording, job, err := deps.RecordingService.Reanalyze(c.Request.Context(), id)
		if err != nil {
			switch {
			case recordings.IsNotFound(err):
				types.SendNotFound(c, "Recording not found")
			case errors.Is(err, recordings.ErrNotReanalyzable):
				types.SendConflict(c, "Recording is still being analyzed")
			default:
				log.Printf("[ERROR] Failed to reanalyze recording %d: %v", id, err)
				types.SendInternalError(c, "Failed to queue reanalysis")
			}
			return
		}

		c.JSON(202, types.RecordingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusQueued, Message: "Reanalysis queued"},
			Recording:    recording,
			JobID:        job.ID,
		})
	}
}
