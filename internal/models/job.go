package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// JobStatus represents the status of a job in the queue
type JobStatus string

const (
	JobStatusPending           JobStatus = "pending"
	JobStatusProcessing        JobStatus = "processing"
	JobStatusCompleted         JobStatus = "completed"
	JobStatusFailed            JobStatus = "failed"
	JobStatusPermanentlyFailed JobStatus = "permanently_failed"
	JobStatusCancelled         JobStatus = "cancelled"
)

// JobType represents the type of job to be processed
type JobType string

const (
	JobTypeAudioAnalysis JobType = "audio_analysis"
)

// JobErrorType represents the category of error that occurred
type JobErrorType string

const (
	ErrorTypeTranscription JobErrorType = "transcription" // Speech-to-text call failed
	ErrorTypeProcessing    JobErrorType = "processing"    // Metric or feedback processing failed
	ErrorTypeSystem        JobErrorType = "system"        // Database, worker, or other system error
	ErrorTypeNotFound      JobErrorType = "not_found"     // Resource permanently not found
)

// StructuredJobError carries error classification alongside the message
type StructuredJobError struct {
	Type     JobErrorType
	Code     string
	Message  string
	Details  string
	Original error
}

func (e *StructuredJobError) Error() string {
	return e.Message
}

// NewTranscriptionError creates a transcription-related structured error
func NewTranscriptionError(code, message, details string, originalErr error) *StructuredJobError {
	return &StructuredJobError{
		Type:     ErrorTypeTranscription,
		Code:     code,
		Message:  message,
		Details:  details,
		Original: originalErr,
	}
}

// NewProcessingError creates a processing-related structured error
func NewProcessingError(code, message, details string, originalErr error) *StructuredJobError {
	return &StructuredJobError{
		Type:     ErrorTypeProcessing,
		Code:     code,
		Message:  message,
		Details:  details,
		Original: originalErr,
	}
}

// NewNotFoundError creates a not-found error that should result in permanent failure
func NewNotFoundError(code, message, details string, originalErr error) *StructuredJobError {
	return &StructuredJobError{
		Type:     ErrorTypeNotFound,
		Code:     code,
		Message:  message,
		Details:  details,
		Original: originalErr,
	}
}

// Job represents a background job in the queue
type Job struct {
	gorm.Model
	Type         JobType    `json:"type" gorm:"not null;index:idx_jobs_type_status"`
	Status       JobStatus  `json:"status" gorm:"default:'pending';index:idx_jobs_status_priority"`
	Payload      JobPayload `json:"payload" gorm:"type:json"`
	Priority     int        `json:"priority" gorm:"default:0;index:idx_jobs_status_priority"`
	MaxRetries   int        `json:"max_retries" gorm:"default:3"`
	RetryCount   int        `json:"retry_count" gorm:"default:0"`
	Progress     int        `json:"progress" gorm:"default:0"` // 0-100
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	LastFailedAt *time.Time `json:"last_failed_at"`
	Error        string     `json:"error,omitempty"`
	Result       JobResult  `json:"result,omitempty" gorm:"type:json"`
	WorkerID     string     `json:"worker_id,omitempty"`

	// Error classification fields
	ErrorType    string `json:"error_type,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorDetails string `json:"error_details,omitempty"`
}

// JobPayload represents the input data for a job
type JobPayload map[string]interface{}

// Value implements driver.Valuer interface for JobPayload
func (p JobPayload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for JobPayload
func (p *JobPayload) Scan(value interface{}) error {
	if value == nil {
		*p = make(JobPayload)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}

// JobResult represents the output data from a completed job
type JobResult map[string]interface{}

// Value implements driver.Valuer interface for JobResult
func (r JobResult) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner interface for JobResult
func (r *JobResult) Scan(value interface{}) error {
	if value == nil {
		*r = make(JobResult)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, r)
}

// IsRetryable returns true if the job can be retried
func (j *Job) IsRetryable() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// CanRetryNow returns true if the retry backoff has elapsed.
// Backoff is exponential: minDelay * 2^retryCount.
func (j *Job) CanRetryNow(minDelay time.Duration) bool {
	if !j.IsRetryable() {
		return false
	}

	if j.LastFailedAt == nil {
		return true
	}

	backoffDelay := minDelay * time.Duration(1<<uint(j.RetryCount))
	return time.Since(*j.LastFailedAt) >= backoffDelay
}

// IsTerminal returns true if the job is in a terminal state
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted ||
		j.Status == JobStatusCancelled ||
		j.Status == JobStatusPermanentlyFailed ||
		(j.Status == JobStatusFailed && !j.IsRetryable())
}

// GetPayloadValue safely retrieves a value from the payload
func (j *Job) GetPayloadValue(key string) (interface{}, bool) {
	if j.Payload == nil {
		return nil, false
	}
	val, ok := j.Payload[key]
	return val, ok
}

// GetPayloadUint safely retrieves a uint value from the payload.
// JSON numbers decode as float64, so both are handled.
func (j *Job) GetPayloadUint(key string) (uint, bool) {
	val, ok := j.GetPayloadValue(key)
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}

// SetErrorDetails sets error classification information
func (j *Job) SetErrorDetails(errorType JobErrorType, errorCode, errorMsg, errorDetails string) {
	j.ErrorType = string(errorType)
	j.ErrorCode = errorCode
	j.Error = errorMsg
	j.ErrorDetails = errorDetails
}

// TableName specifies the table name for GORM
func (Job) TableName() string {
	return "jobs"
}
