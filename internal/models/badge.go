package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// BadgeType identifies an achievement badge
type BadgeType string

const (
	BadgeFirstRecording    BadgeType = "first_recording"
	BadgeFirstCompletion   BadgeType = "first_completion"
	BadgePerfectionist     BadgeType = "perfectionist"
	BadgeFiveRecordings    BadgeType = "five_recordings"
	BadgeTenRecordings     BadgeType = "ten_recordings"
	BadgeLevelUp           BadgeType = "level_up"
	BadgeMaxLevel          BadgeType = "max_level"
	BadgeImprovementStreak BadgeType = "improvement_streak"
)

// BadgeDisplayNames maps badge types to their display names.
var BadgeDisplayNames = map[BadgeType]string{
	BadgeFirstRecording:    "First Recording",
	BadgeFirstCompletion:   "First Completion",
	BadgePerfectionist:     "Perfectionist",
	BadgeFiveRecordings:    "Five Recordings",
	BadgeTenRecordings:     "Ten Recordings",
	BadgeLevelUp:           "Level Up",
	BadgeMaxLevel:          "Max Level",
	BadgeImprovementStreak: "On a Roll",
}

// Badge is an achievement earned by a presentation. Badges are append-only:
// once earned they are never edited or removed, and at most one badge exists
// per (presentation, badge type) pair.
type Badge struct {
	gorm.Model
	PresentationID uint          `json:"presentation_id" gorm:"not null;uniqueIndex:idx_badges_presentation_type"`
	BadgeType      BadgeType     `json:"badge_type" gorm:"not null;uniqueIndex:idx_badges_presentation_type"`
	Name           string        `json:"name" gorm:"not null"`
	EarnedAt       time.Time     `json:"earned_at"`
	Metadata       BadgeMetadata `json:"metadata,omitempty" gorm:"type:json"`
}

// TableName specifies the table name for GORM
func (Badge) TableName() string {
	return "badges"
}

// BadgeMetadata holds free-form context about how a badge was earned.
type BadgeMetadata map[string]interface{}

// Value implements driver.Valuer interface for BadgeMetadata
func (m BadgeMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for BadgeMetadata
func (m *BadgeMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = make(BadgeMetadata)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, m)
}
