package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Level thresholds: level = min(5, 1 + XP/100).
const (
	MaxLevel   = 5
	XPPerLevel = 100
	MaxLevelXP = (MaxLevel - 1) * XPPerLevel
)

// LevelNames maps levels 1-5 to their display names.
var LevelNames = [MaxLevel]string{
	"Novice",
	"Apprentice",
	"Speaker",
	"Orator",
	"Presentation Master",
}

// Presentation is the aggregate root: it owns its recordings and badges,
// and carries the gamification state (XP and the level derived from it).
type Presentation struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	// Reference document (optional)
	DocumentName string     `json:"document_name,omitempty"`
	DocumentText string     `json:"-" gorm:"type:text"`
	KeyPoints    StringList `json:"key_points,omitempty" gorm:"type:json"`

	// Gamification state. CurrentLevel is always re-derived from TotalXP
	// before persisting; the two are never written independently.
	TotalXP      int `json:"total_xp" gorm:"default:0"`
	CurrentLevel int `json:"current_level" gorm:"default:1"`

	Recordings []Recording `json:"recordings,omitempty" gorm:"foreignKey:PresentationID;constraint:OnDelete:CASCADE"`
	Badges     []Badge     `json:"badges,omitempty" gorm:"foreignKey:PresentationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Presentation) TableName() string {
	return "presentations"
}

// LevelForXP derives the level for an XP total.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	if xp >= MaxLevelXP {
		return MaxLevel
	}
	return 1 + xp/XPPerLevel
}

// LevelName returns the display name for the presentation's current level.
func (p *Presentation) LevelName() string {
	level := p.CurrentLevel
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return LevelNames[level-1]
}

// XPToNextLevel returns the XP remaining until the next level, 0 at max level.
func (p *Presentation) XPToNextLevel() int {
	if p.CurrentLevel >= MaxLevel {
		return 0
	}
	next := p.CurrentLevel * XPPerLevel
	remaining := next - p.TotalXP
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// HasDocument reports whether a reference document is linked.
func (p *Presentation) HasDocument() bool {
	return p.DocumentText != ""
}

// StringList is a JSON-encoded list of strings stored in a single column.
type StringList []string

// Value implements driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
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
