package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("PRESEGUIDE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat64 returns a float64 config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct invalid worker count
	if viper.GetInt("processing.workers") <= 0 {
		viper.Set("processing.workers", 2)
	}

	// Scoring weights have to be positive for the blend to stay in [0,100]
	for _, key := range []string{"scoring.pacing_weight", "scoring.clarity_weight", "scoring.coverage_weight"} {
		if viper.GetFloat64(key) < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}

	if viper.GetFloat64("scoring.ideal_wpm_low") >= viper.GetFloat64("scoring.ideal_wpm_high") {
		return fmt.Errorf("scoring.ideal_wpm_low must be below scoring.ideal_wpm_high")
	}

	return nil
}

// validateAPIKeys warns about placeholder API keys, and refuses them in production
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	whisperKey := viper.GetString("whisper.api_key")
	for _, placeholder := range placeholders {
		if whisperKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid Whisper API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: Whisper API key is using a placeholder value")
			break
		}
	}

	geminiKey := viper.GetString("gemini.api_key")
	for _, placeholder := range placeholders {
		if geminiKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid Gemini API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: Gemini API key is using a placeholder value")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Processing.Workers <= 0 {
		c.Processing.Workers = 2
	}

	if c.Scoring.IdealWPMLow >= c.Scoring.IdealWPMHigh {
		return fmt.Errorf("ideal WPM band is inverted")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_upload_bytes", int64(52428800)) // 50 MB audio uploads

	// Database defaults
	viper.SetDefault("database.path", "./data/preseguide.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.verbose", false)

	// Processing defaults
	viper.SetDefault("processing.workers", 2)
	viper.SetDefault("processing.poll_interval", 2*time.Second)
	viper.SetDefault("processing.job_timeout", 15*time.Minute)
	viper.SetDefault("processing.retry_attempts", 3)
	viper.SetDefault("processing.retry_delay", 5*time.Second)

	// Whisper defaults
	viper.SetDefault("whisper.model", "whisper-1")
	viper.SetDefault("whisper.language", "en")
	viper.SetDefault("whisper.temperature", 0.0)
	viper.SetDefault("whisper.timeout", 5*time.Minute)

	// Gemini defaults
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.model", "gemini-pro")
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("gemini.timeout", 60*time.Second)

	// Storage defaults
	viper.SetDefault("storage.audio_dir", "./data/recordings")
	viper.SetDefault("storage.document_dir", "./data/documents")

	// Scoring defaults (tunable product parameters)
	viper.SetDefault("scoring.ideal_wpm_low", 120.0)
	viper.SetDefault("scoring.ideal_wpm_high", 160.0)
	viper.SetDefault("scoring.pacing_weight", 0.4)
	viper.SetDefault("scoring.clarity_weight", 0.4)
	viper.SetDefault("scoring.coverage_weight", 0.2)

	// Gamification defaults (tunable product parameters)
	viper.SetDefault("gamification.creation_xp", 25)
	viper.SetDefault("gamification.document_xp", 30)
	viper.SetDefault("gamification.completion_xp", 30)
	viper.SetDefault("gamification.improvement_xp_cap", 25)
	viper.SetDefault("gamification.level_up_bonus_xp", 50)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)
}
