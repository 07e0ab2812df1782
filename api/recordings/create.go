package recordings

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/audiostore"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary Upload a practice recording
// @Description Stores the uploaded audio, assigns the next iteration number, and queues background analysis. Poll the status endpoint for completion.
// @Tags recordings
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Presentation ID"
// @Param audio formData file true "Audio recording (.webm, .mp3, .wav, .m4a, .ogg, .mp4)"
// @Success 202 {object} types.RecordingResponse "Recording queued for analysis"
// @Failure 400 {object} types.ErrorResponse "Missing or unsupported audio"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Upload failed"
// @Router /api/v1/presentations/{id}/recordings [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
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

		fileHeader, err := c.FormFile("audio")
		if err != nil {
			types.SendBadRequest(c, "Missing audio file")
			return
		}

		if !audiostore.AllowedExtension(fileHeader.Filename) {
			types.SendBadRequest(c, "Unsupported audio format")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[ERROR] Failed to open uploaded audio: %v", err)
			types.SendInternalError(c, "Failed to read audio")
			return
		}
		defer file.Close()

		// Stored under a fresh name so concurrent uploads with the same
		// client-side filename cannot overwrite each other
		storedName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
		audioPath, err := deps.AudioStore.Save(c.Request.Context(), presentationID, storedName, file)
		if err != nil {
			log.Printf("[ERROR] Failed to store audio for presentation %d: %v", presentationID, err)
			types.SendInternalError(c, "Failed to store audio")
			return
		}

		recording, job, err := deps.RecordingService.CreateRecording(c.Request.Context(), presentationID, audioPath)
		if err != nil {
			log.Printf("[ERROR] Failed to create recording for presentation %d: %v", presentationID, err)
			types.SendInternalError(c, "Failed to create recording")
			return
		}

		c.JSON(202, types.RecordingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusQueued, Message: "Recording queued for analysis"},
			Recording:    recording,
			JobID:        job.ID,
		})
	}
}
