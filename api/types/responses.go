package types

import (
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/coach"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/progression"
)

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// PresentationResponse wraps a single presentation, optionally with the XP
// award that the triggering action produced.
type PresentationResponse struct {
	BaseResponse
	Presentation *models.Presentation `json:"presentation"`
	Award        *progression.Award   `json:"award,omitempty"`
}

// PresentationsResponse for paginated presentation lists
type PresentationsResponse struct {
	BaseResponse
	Presentations []models.Presentation `json:"presentations"`
	Count         int                   `json:"count"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	Limit         int                   `json:"limit"`
}

// RecordingResponse wraps a single recording and, for freshly uploaded
// recordings, the analysis job tracking it.
type RecordingResponse struct {
	BaseResponse
	Recording *models.Recording `json:"recording"`
	JobID     uint              `json:"job_id,omitempty"`
}

// RecordingsResponse for a presentation's recording list
type RecordingsResponse struct {
	BaseResponse
	Recordings []models.Recording `json:"recordings"`
	Count      int                `json:"count"`
}

// ProgressResponse for the progress summary endpoint
type ProgressResponse struct {
	BaseResponse
	Progress *progression.Summary `json:"progress"`
}

// BadgesResponse for badge lists
type BadgesResponse struct {
	BaseResponse
	Badges []models.Badge `json:"badges"`
	Count  int            `json:"count"`
}

// QuestionsResponse for generated practice questions
type QuestionsResponse struct {
	BaseResponse
	Questions []coach.Question `json:"questions"`
	Count     int              `json:"count"`
}

// JobStatusResponse for async job status polling
type JobStatusResponse struct {
	BaseResponse
	JobID    uint             `json:"job_id"`
	JobState models.JobStatus `json:"job_state"`
	Progress int              `json:"progress"` // 0-100
	Error    string           `json:"error,omitempty"`
}
