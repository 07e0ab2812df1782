package presentations

import (
	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
)

// RegisterRoutes registers presentation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/presentations - Create a presentation
	router.POST("", Create(deps))

	// GET /api/v1/presentations - List presentations (paginated)
	router.GET("", List(deps))

	// GET /api/v1/presentations/:id - Get presentation details
	router.GET("/:id", GetByID(deps))

	// PUT /api/v1/presentations/:id - Update title/description
	router.PUT("/:id", Update(deps))

	// DELETE /api/v1/presentations/:id - Delete with recordings and badges
	router.DELETE("/:id", Delete(deps))

	// POST /api/v1/presentations/:id/document - Upload reference document
	router.POST("/:id/document", UploadDocument(deps))

	// GET /api/v1/presentations/:id/progress - Progress summary
	router.GET("/:id/progress", GetProgress(deps))

	// GET /api/v1/presentations/:id/badges - Earned badges
	router.GET("/:id/badges", GetBadges(deps))

	// POST /api/v1/presentations/:id/questions - Generate practice Q&A
	router.POST("/:id/questions", GenerateQuestions(deps))
}
