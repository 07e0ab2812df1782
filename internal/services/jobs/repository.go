package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository errors
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrNoJobsAvailable = errors.New("no jobs available")
)

const (
	// retryBaseDelay seeds the exponential backoff for failed jobs:
	// a job with N failures waits retryBaseDelay * 2^N before reclaim.
	retryBaseDelay = 30 * time.Second

	// claimScanLimit caps how many queue rows one claim inspects while
	// skipping failed jobs that are still inside their backoff window.
	claimScanLimit = 10
)

// Repository defines the interface for job persistence
type Repository interface {
	CreateJob(ctx context.Context, job *models.Job) error

	GetJob(ctx context.Context, id uint) (*models.Job, error)
	GetJobByTypeAndPayload(ctx context.Context, jobType models.JobType, key, value string) (*models.Job, error)
	GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error)

	ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error)
	UpdateJobProgress(ctx context.Context, jobID uint, progress int) error
	CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error
	FailJob(ctx context.Context, jobID uint, errorMsg string) error
	FailJobWithDetails(ctx context.Context, jobID uint, errorType models.JobErrorType, errorCode, errorMsg, errorDetails string) error
	ReleaseJob(ctx context.Context, jobID uint) error

	DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error)
	CountJobsByStatus(ctx context.Context) (map[models.JobStatus]int64, error)
}

// repository implements Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new job repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateJob creates a new job
func (r *repository) CreateJob(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetJob retrieves a job by ID
func (r *repository) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return &job, nil
}

// GetJobByTypeAndPayload finds the most recent job by type and a payload value
func (r *repository) GetJobByTypeAndPayload(ctx context.Context, jobType models.JobType, key, value string) (*models.Job, error) {
	var job models.Job

	// Use JSON extract for SQLite
	query := r.db.WithContext(ctx).
		Where("type = ?", jobType).
		Where("CAST(json_extract(payload, ?) AS TEXT) = ?", "$."+key, value).
		Order("created_at DESC").
		First(&job)

	if err := query.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job by type and payload: %w", err)
	}

	return &job, nil
}

// GetJobsByStatus retrieves jobs by status
func (r *repository) GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error) {
	var jobs []*models.Job
	query := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&jobs).Error
	return jobs, err
}

// ClaimNextJob atomically claims the next available job for a worker
func (r *repository) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	var job models.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Find and lock the next available job. Permanently failed jobs are
		// never claimed; failed jobs are claimable only under their retry cap.
		query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("(status = ? OR (status = ? AND retry_count < max_retries))",
				models.JobStatusPending, models.JobStatusFailed)

		if len(jobTypes) > 0 {
			query = query.Where("type IN ?", jobTypes)
		}

		var candidates []models.Job
		if err := query.Order("priority DESC, created_at ASC").
			Limit(claimScanLimit).
			Find(&candidates).Error; err != nil {
			return fmt.Errorf("finding job to claim: %w", err)
		}

		// Pending jobs are always claimable; failed jobs wait out their
		// exponential backoff before another attempt.
		claimed := false
		for i := range candidates {
			candidate := &candidates[i]
			if candidate.Status == models.JobStatusFailed && !candidate.CanRetryNow(retryBaseDelay) {
				continue
			}
			job = *candidate
			claimed = true
			break
		}
		if !claimed {
			return ErrNoJobsAvailable
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":     models.JobStatusProcessing,
			"worker_id":  workerID,
			"started_at": &now,
		}

		wasRetry := job.Status == models.JobStatusFailed
		if wasRetry {
			updates["retry_count"] = job.RetryCount + 1
		}

		if err := tx.Model(&job).Updates(updates).Error; err != nil {
			return fmt.Errorf("updating claimed job: %w", err)
		}

		job.Status = models.JobStatusProcessing
		job.WorkerID = workerID
		job.StartedAt = &now
		if wasRetry {
			job.RetryCount++
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &job, nil
}

// UpdateJobProgress updates the progress of a job
func (r *repository) UpdateJobProgress(ctx context.Context, jobID uint, progress int) error {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusProcessing).
		Update("progress", progress)

	if result.Error != nil {
		return fmt.Errorf("updating job progress: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// CompleteJob marks a job as completed with a result
func (r *repository) CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.JobStatusCompleted,
		"progress":     100,
		"completed_at": &now,
		"result":       result,
	}

	res := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", jobID).
		Updates(updates)

	if res.Error != nil {
		return fmt.Errorf("completing job: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// FailJob marks a job as failed with an error message
func (r *repository) FailJob(ctx context.Context, jobID uint, errorMsg string) error {
	return r.FailJobWithDetails(ctx, jobID, models.ErrorTypeSystem, "", errorMsg, "")
}

// FailJobWithDetails marks a job as failed with detailed error information
func (r *repository) FailJobWithDetails(ctx context.Context, jobID uint, errorType models.JobErrorType, errorCode, errorMsg, errorDetails string) error {
	now := time.Now()

	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("finding job to fail: %w", err)
	}

	newRetryCount := job.RetryCount + 1

	// Not-found errors never resolve on retry, so they fail permanently.
	var status models.JobStatus
	if newRetryCount >= job.MaxRetries || errorType == models.ErrorTypeNotFound {
		status = models.JobStatusPermanentlyFailed
	} else {
		status = models.JobStatusFailed
	}

	updates := map[string]interface{}{
		"status":         status,
		"error":          errorMsg,
		"error_type":     string(errorType),
		"error_code":     errorCode,
		"error_details":  errorDetails,
		"last_failed_at": &now,
		"retry_count":    newRetryCount,
		"worker_id":      "",
	}

	if status == models.JobStatusPermanentlyFailed {
		updates["completed_at"] = &now
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", jobID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failing job: %w", err)
	}

	return nil
}

// ReleaseJob releases a job back to pending status
func (r *repository) ReleaseJob(ctx context.Context, jobID uint) error {
	updates := map[string]interface{}{
		"status":     models.JobStatusPending,
		"worker_id":  "",
		"started_at": nil,
		"progress":   0,
	}

	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ? AND status IN ?", jobID, []models.JobStatus{
			models.JobStatusProcessing,
			models.JobStatusFailed,
			models.JobStatusPermanentlyFailed,
		}).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("releasing job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// DeleteOldJobs deletes terminal jobs older than the specified time
func (r *repository) DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Where("status IN ?", []models.JobStatus{
			models.JobStatusCompleted,
			models.JobStatusPermanentlyFailed,
			models.JobStatusCancelled,
		}).
		Delete(&models.Job{})

	if result.Error != nil {
		return 0, fmt.Errorf("deleting old jobs: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// CountJobsByStatus returns the number of jobs in each status
func (r *repository) CountJobsByStatus(ctx context.Context) (map[models.JobStatus]int64, error) {
	type statusCount struct {
		Status models.JobStatus
		Count  int64
	}

	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting jobs by status: %w", err)
	}

	counts := make(map[models.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
