package presentations

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/documents"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary Upload a reference document
// @Description Extracts text and key points from an uploaded PDF, DOCX, or TXT document and links it to the presentation. The document XP award is granted only for the first document.
// @Tags presentations
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Presentation ID"
// @Param document formData file true "Reference document (.pdf, .docx, .txt)"
// @Success 200 {object} types.PresentationResponse "Document attached"
// @Failure 400 {object} types.ErrorResponse "Missing or unsupported document"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Upload failed"
// @Router /api/v1/presentations/{id}/document [post]
func UploadDocument(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		fileHeader, err := c.FormFile("document")
		if err != nil {
			types.SendBadRequest(c, "Missing document file")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[ERROR] Failed to open uploaded document: %v", err)
			types.SendInternalError(c, "Failed to read document")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Printf("[ERROR] Failed to read uploaded document: %v", err)
			types.SendInternalError(c, "Failed to read document")
			return
		}

		text, err := documents.ExtractText(data, fileHeader.Filename)
		if err != nil {
			if errors.Is(err, documents.ErrUnsupportedFormat) {
				types.SendBadRequest(c, "Unsupported document format. Supported: "+strings.Join(documents.SupportedExtensions, ", "))
				return
			}
			if errors.Is(err, documents.ErrNoText) {
				types.SendBadRequest(c, "No text could be extracted from the document")
				return
			}
			log.Printf("[ERROR] Failed to extract document text: %v", err)
			types.SendInternalError(c, "Failed to process document")
			return
		}

		presentation, award, err := deps.PresentationService.AttachDocument(c.Request.Context(), id, presentations.Document{
			Filename:  fileHeader.Filename,
			Text:      text,
			KeyPoints: documents.ExtractKeyPoints(text),
		})
		if err != nil {
			switch {
			case presentations.IsNotFound(err):
				types.SendNotFound(c, "Presentation not found")
			case errors.Is(err, presentations.ErrInvalidInput):
				types.SendBadRequest(c, err.Error())
			default:
				log.Printf("[ERROR] Failed to attach document to presentation %d: %v", id, err)
				types.SendInternalError(c, "Failed to attach document")
			}
			return
		}

		log.Printf("[DEBUG] Attached document %s to presentation %d (%d key points)",
			fileHeader.Filename, id, len(presentation.KeyPoints))

		types.SendSuccess(c, types.PresentationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Document attached"},
			Presentation: presentation,
			Award:        award,
		})
	}
}
