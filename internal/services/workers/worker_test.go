package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Job{}))
	return db
}

// fakeProcessor records the jobs it was handed and returns a canned error.
type fakeProcessor struct {
	processed []uint
	err       error
}

func (f *fakeProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	f.processed = append(f.processed, job.ID)
	return f.err
}

func (f *fakeProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeAudioAnalysis
}

func TestProcessNextJob(t *testing.T) {
	ctx := context.Background()

	t.Run("errors without registered processors", func(t *testing.T) {
		db := setupTestDB(t)
		jobService := jobs.NewService(jobs.NewRepository(db))
		worker := NewWorker("worker-1", jobService, time.Second)

		err := worker.processNextJob(ctx)
		assert.Error(t, err)
	})

	t.Run("no pending jobs is not an error", func(t *testing.T) {
		db := setupTestDB(t)
		jobService := jobs.NewService(jobs.NewRepository(db))
		worker := NewWorker("worker-1", jobService, time.Second)
		worker.RegisterProcessor(&fakeProcessor{})

		err := worker.processNextJob(ctx)
		assert.NoError(t, err)
	})

	t.Run("dispatches claimed job to the processor", func(t *testing.T) {
		db := setupTestDB(t)
		jobService := jobs.NewService(jobs.NewRepository(db))
		worker := NewWorker("worker-1", jobService, time.Second)

		processor := &fakeProcessor{}
		worker.RegisterProcessor(processor)

		job, err := jobService.EnqueueJob(ctx, models.JobTypeAudioAnalysis, models.JobPayload{"recording_id": 1})
		require.NoError(t, err)

		require.NoError(t, worker.processNextJob(ctx))
		assert.Equal(t, []uint{job.ID}, processor.processed)
	})

	t.Run("plain processor error marks job failed", func(t *testing.T) {
		db := setupTestDB(t)
		jobService := jobs.NewService(jobs.NewRepository(db))
		worker := NewWorker("worker-1", jobService, time.Second)
		worker.RegisterProcessor(&fakeProcessor{err: errors.New("boom")})

		job, err := jobService.EnqueueJob(ctx, models.JobTypeAudioAnalysis, models.JobPayload{"recording_id": 1})
		require.NoError(t, err)

		require.Error(t, worker.processNextJob(ctx))

		updated, err := jobService.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusFailed, updated.Status)
		assert.Equal(t, "boom", updated.Error)
	})

	t.Run("not-found processor error fails job permanently", func(t *testing.T) {
		db := setupTestDB(t)
		jobService := jobs.NewService(jobs.NewRepository(db))
		worker := NewWorker("worker-1", jobService, time.Second)
		worker.RegisterProcessor(&fakeProcessor{
			err: models.NewNotFoundError("RECORDING_NOT_FOUND", "recording 42 not found", "", nil),
		})

		job, err := jobService.EnqueueJob(ctx, models.JobTypeAudioAnalysis, models.JobPayload{"recording_id": 42})
		require.NoError(t, err)

		require.Error(t, worker.processNextJob(ctx))

		updated, err := jobService.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusPermanentlyFailed, updated.Status)
		assert.Equal(t, string(models.ErrorTypeNotFound), updated.ErrorType)
		assert.Equal(t, "RECORDING_NOT_FOUND", updated.ErrorCode)
	})
}

func TestWorkerPool(t *testing.T) {
	ctx := context.Background()

	t.Run("start is idempotent-guarded", func(t *testing.T) {
		db := setupTestDB(t)
		jobService := jobs.NewService(jobs.NewRepository(db))
		pool := NewWorkerPool(jobService, 2, 10*time.Millisecond)
		pool.RegisterProcessor(&fakeProcessor{})

		require.NoError(t, pool.Start(ctx))
		defer pool.Stop()

		assert.Error(t, pool.Start(ctx))
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		jobService := jobs.NewService(jobs.NewRepository(db))
		pool := NewWorkerPool(jobService, 1, 10*time.Millisecond)

		pool.Stop()
	})
}
