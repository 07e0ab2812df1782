package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Processing   ProcessingConfig   `mapstructure:"processing"`
	Whisper      WhisperConfig      `mapstructure:"whisper"`
	Gemini       GeminiConfig       `mapstructure:"gemini"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Scoring      ScoringConfig      `mapstructure:"scoring"`
	Gamification GamificationConfig `mapstructure:"gamification"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	Verbose               bool          `mapstructure:"verbose"`
}

// ProcessingConfig contains analysis pipeline settings
type ProcessingConfig struct {
	Workers       int           `mapstructure:"workers"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	JobTimeout    time.Duration `mapstructure:"job_timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

// WhisperConfig contains OpenAI Whisper API settings
type WhisperConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Language    string        `mapstructure:"language"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// GeminiConfig contains Google Gemini API settings
type GeminiConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// StorageConfig contains file storage settings
type StorageConfig struct {
	AudioDir    string `mapstructure:"audio_dir"`
	DocumentDir string `mapstructure:"document_dir"`
}

// ScoringConfig contains the tunable metric-scorer parameters.
// The defaults are product decisions, not laws of nature.
type ScoringConfig struct {
	IdealWPMLow    float64 `mapstructure:"ideal_wpm_low"`
	IdealWPMHigh   float64 `mapstructure:"ideal_wpm_high"`
	PacingWeight   float64 `mapstructure:"pacing_weight"`
	ClarityWeight  float64 `mapstructure:"clarity_weight"`
	CoverageWeight float64 `mapstructure:"coverage_weight"`
}

// GamificationConfig contains the tunable XP award amounts
type GamificationConfig struct {
	CreationXP       int `mapstructure:"creation_xp"`
	DocumentXP       int `mapstructure:"document_xp"`
	CompletionXP     int `mapstructure:"completion_xp"`
	ImprovementXPCap int `mapstructure:"improvement_xp_cap"`
	LevelUpBonusXP   int `mapstructure:"level_up_bonus_xp"`
}

// RateLimitConfig contains per-client rate limit settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}
