package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

// Get reports liveness plus the state of the two things the API cannot
// work without: the database and the analysis job queue.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			response["database"] = databaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.JobService != nil {
			response["queue"] = queueStatus(c, deps)
		}

		c.JSON(http.StatusOK, response)
	}
}

func databaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

// queueStatus summarizes the analysis backlog. Workers not running shows
// up here as a growing pending count rather than a hard failure.
func queueStatus(c *gin.Context, deps *types.Dependencies) gin.H {
	stats, err := deps.JobService.QueueStats(c.Request.Context())
	if err != nil {
		return gin.H{"status": "unavailable", "error": err.Error()}
	}

	return gin.H{
		"status":     "ok",
		"pending":    stats[models.JobStatusPending],
		"processing": stats[models.JobStatusProcessing],
		"failed":     stats[models.JobStatusFailed] + stats[models.JobStatusPermanentlyFailed],
	}
}
