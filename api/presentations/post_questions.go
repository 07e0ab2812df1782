package presentations

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/coach"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
)

// @Summary Generate practice Q&A
// @Description Generates audience questions with suggested answer frameworks, based on the presentation's topic and reference document
// @Tags presentations
// @Produce json
// @Param id path int true "Presentation ID"
// @Success 200 {object} types.QuestionsResponse "Generated questions"
// @Failure 400 {object} types.ErrorResponse "Invalid presentation ID"
// @Failure 404 {object} types.ErrorResponse "Presentation not found"
// @Failure 500 {object} types.ErrorResponse "Generation failed"
// @Router /api/v1/presentations/{id}/questions [post]
func GenerateQuestions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		presentation, err := deps.PresentationService.GetPresentationByID(c.Request.Context(), id)
		if err != nil {
			if presentations.IsNotFound(err) {
				types.SendNotFound(c, "Presentation not found")
				return
			}
			log.Printf("[ERROR] Failed to fetch presentation %d: %v", id, err)
			types.SendInternalError(c, "Failed to fetch presentation")
			return
		}

		if deps.CoachService == nil {
			types.SendInternalError(c, "Question generation is not configured")
			return
		}

		questions := deps.CoachService.GenerateQuestions(c.Request.Context(), coach.QAInput{
			Title:        presentation.Title,
			Description:  presentation.Description,
			DocumentText: presentation.DocumentText,
		})

		types.SendSuccess(c, types.QuestionsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Questions:    questions,
			Count:        len(questions),
		})
	}
}
