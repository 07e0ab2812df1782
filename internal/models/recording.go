package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// RecordingStatus represents the lifecycle state of a recording's analysis
type RecordingStatus string

const (
	RecordingStatusPending    RecordingStatus = "pending"
	RecordingStatusProcessing RecordingStatus = "processing"
	RecordingStatusCompleted  RecordingStatus = "completed"
	RecordingStatusFailed     RecordingStatus = "failed"
)

// Recording is one practice attempt for a presentation. IterationNumber is
// 1-based and dense at creation time (count of existing recordings + 1);
// it is never reassigned, even if an earlier recording is deleted.
type Recording struct {
	gorm.Model
	UUID            string          `json:"uuid" gorm:"uniqueIndex;not null"`
	PresentationID  uint            `json:"presentation_id" gorm:"not null;index"`
	IterationNumber int             `json:"iteration_number" gorm:"not null"`
	AudioPath       string          `json:"-"`
	Status          RecordingStatus `json:"status" gorm:"default:'pending';index"`

	// XPAwarded marks that completion XP was granted for this recording.
	// It survives re-analysis, so the same upload is only awarded once.
	XPAwarded bool `json:"-" gorm:"default:false"`

	// Raw metrics from the analysis pipeline
	Transcription   string         `json:"transcription,omitempty" gorm:"type:text"`
	DurationSeconds float64        `json:"duration_seconds"`
	TotalWords      int            `json:"total_words"`
	FillerWordCount int            `json:"filler_word_count"`
	FillerWords     FillerWordList `json:"filler_words,omitempty" gorm:"type:json"`
	WordsPerMinute  float64        `json:"words_per_minute"`

	// Computed sub-scores, all 0-100
	PacingScore  float64 `json:"pacing_score"`
	ClarityScore float64 `json:"clarity_score"`
	OverallScore float64 `json:"overall_score"`

	// Content coverage, present only when the presentation has a document
	CoverageScore   *float64   `json:"coverage_score,omitempty"`
	MissedKeyPoints StringList `json:"missed_key_points,omitempty" gorm:"type:json"`

	// Improvement versus the most recent completed prior iteration.
	// Nil on the first iteration; ImprovementPercent is "N/A" then.
	ImprovementDelta   *float64 `json:"improvement_delta,omitempty"`
	ImprovementPercent string   `json:"improvement_percent"`

	AIFeedback   string `json:"ai_feedback,omitempty" gorm:"type:text"`
	ErrorMessage string `json:"error_message,omitempty" gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (Recording) TableName() string {
	return "recordings"
}

// IsTerminal returns true if analysis has finished, successfully or not.
func (r *Recording) IsTerminal() bool {
	return r.Status == RecordingStatusCompleted || r.Status == RecordingStatusFailed
}

// FillerWord is a single filler-word occurrence in the transcript.
type FillerWord struct {
	Word     string `json:"word"`
	Position int    `json:"position"`
	Context  string `json:"context"`
}

// FillerWordList is a JSON-encoded list of filler-word occurrences.
type FillerWordList []FillerWord

// Value implements driver.Valuer interface for FillerWordList
func (l FillerWordList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for FillerWordList
func (l *FillerWordList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, l)
}
