package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/thechaitanyaanand/preseguide-api/api/health"
	"github.com/thechaitanyaanand/preseguide-api/api/presentations"
	"github.com/thechaitanyaanand/preseguide-api/api/recordings"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/api/version"
	_ "github.com/thechaitanyaanand/preseguide-api/docs/swagger"
	"github.com/thechaitanyaanand/preseguide-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	if cfg.RateLimiting.Enabled {
		rps := cfg.RateLimiting.RPS
		burst := cfg.RateLimiting.Burst
		if rps <= 0 {
			rps = 10
		}
		if burst <= 0 {
			burst = 20
		}
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}

	presentationGroup := v1.Group("/presentations")
	presentations.RegisterRoutes(presentationGroup, deps)

	recordingGroup := v1.Group("/recordings")
	recordings.RegisterRoutes(presentationGroup, recordingGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
