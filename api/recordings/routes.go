package recordings

import (
	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
)

// RegisterRoutes registers recording routes. Upload and listing live under
// the presentation they belong to; everything else addresses the recording
// directly.
func RegisterRoutes(presentationRouter, router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/presentations/:id/recordings - Upload a practice recording
	presentationRouter.POST("/:id/recordings", Create(deps))

	// GET /api/v1/presentations/:id/recordings - List a presentation's recordings
	presentationRouter.GET("/:id/recordings", ListByPresentation(deps))

	// GET /api/v1/recordings/:id - Get recording with analysis results
	router.GET("/:id", GetByID(deps))

	// GET /api/v1/recordings/:id/status - Poll analysis job status
	router.GET("/:id/status", GetStatus(deps))

	// POST /api/v1/recordings/:id/reanalyze - Re-run analysis on stored audio
	router.POST("/:id/reanalyze", Reanalyze(deps))
}
