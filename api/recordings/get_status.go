package recordings

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/recordings"
)

// @Summary Poll analysis status
// @Description Returns the state and progress of the recording's analysis job
// @Tags recordings
// @Produce json
// @Param id path int true "Recording ID"
// @Success 200 {object} types.JobStatusResponse "Job status"
// @Failure 400 {object} types.ErrorResponse "Invalid recording ID"
// @Failure 404 {object} types.ErrorResponse "Recording or job not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/recordings/{id}/status [get]
func GetStatus(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if _, err := deps.RecordingService.GetRecordingByID(c.Request.Context(), id); err != nil {
			if recordings.IsNotFound(err) {
				types.SendNotFound(c, "Recording not found")
				return
			}
			log.Printf("[ERROR] Failed to fetch recording %d: %v", id, err)
			types.SendInternalError(c, "Failed to fetch recording")
			return
		}

		job, err := deps.JobService.GetJobForRecording(c.Request.Context(), id)
		if err != nil {
			types.SendNotFound(c, "No analysis job found for recording")
			return
		}

		types.SendSuccess(c, types.JobStatusResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			JobID:        job.ID,
			JobState:     job.Status,
			Progress:     job.Progress,
			Error:        job.Error,
		})
	}
}
