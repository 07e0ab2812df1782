package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/database"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy without database configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		handler := Get(&types.Dependencies{})
		handler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "ok", response["status"])
		database, ok := response["database"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "not configured", database["status"])
	})

	t.Run("nil dependencies", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		handler := Get(nil)
		handler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reports queue backlog", func(t *testing.T) {
		db, err := database.Initialize(":memory:", false)
		require.NoError(t, err)
		defer db.Close()
		require.NoError(t, db.AutoMigrate(&models.Job{}))

		jobService := jobs.NewService(jobs.NewRepository(db.DB))
		_, err = jobService.EnqueueJob(context.Background(), models.JobTypeAudioAnalysis, models.JobPayload{"recording_id": 1})
		require.NoError(t, err)

		engine := gin.New()
		RegisterRoutes(engine, &types.Dependencies{DB: db, JobService: jobService})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		queue, ok := response["queue"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "ok", queue["status"])
		assert.Equal(t, float64(1), queue["pending"])
		assert.Equal(t, float64(0), queue["processing"])
	})
}
