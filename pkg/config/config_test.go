package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	tests := []struct {
		key  string
		want any
	}{
		{"server.port", 8080},
		{"processing.workers", 2},
		{"gamification.creation_xp", 25},
		{"gamification.level_up_bonus_xp", 50},
		{"rate_limiting.rps", 10},
	}

	for _, tt := range tests {
		if got := viper.GetInt(tt.key); got != tt.want {
			t.Errorf("Expected %s to default to %v, got %d", tt.key, tt.want, got)
		}
	}

	if got := viper.GetFloat64("scoring.ideal_wpm_low"); got != 120.0 {
		t.Errorf("Expected scoring.ideal_wpm_low to default to 120.0, got %f", got)
	}
	if got := viper.GetDuration("processing.poll_interval"); got != 2*time.Second {
		t.Errorf("Expected processing.poll_interval to default to 2s, got %v", got)
	}
	if !viper.GetBool("rate_limiting.enabled") {
		t.Error("Expected rate limiting to be enabled by default")
	}
}

func TestGetConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("server.port", 9090)
	viper.Set("whisper.api_key", "test-key")

	cfg, err := GetConfig()
	if err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected server port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Whisper.APIKey != "test-key" {
		t.Errorf("Expected whisper key to unmarshal, got %q", cfg.Whisper.APIKey)
	}
	if cfg.Server.MaxUploadBytes != 52428800 {
		t.Errorf("Expected default upload limit, got %d", cfg.Server.MaxUploadBytes)
	}
	if cfg.Gamification.ImprovementXPCap != 25 {
		t.Errorf("Expected improvement XP cap 25, got %d", cfg.Gamification.ImprovementXPCap)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			setup:   func() {},
			wantErr: false,
		},
		{
			name: "invalid port",
			setup: func() {
				viper.Set("server.port", 0)
			},
			wantErr: true,
		},
		{
			name: "negative scoring weight",
			setup: func() {
				viper.Set("scoring.pacing_weight", -0.5)
			},
			wantErr: true,
		},
		{
			name: "inverted WPM band",
			setup: func() {
				viper.Set("scoring.ideal_wpm_low", 200.0)
			},
			wantErr: true,
		},
		{
			name: "placeholder key rejected in production",
			setup: func() {
				viper.Set("environment", "production")
				viper.Set("whisper.api_key", "YOUR_KEY_HERE")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			setDefaults()
			tt.setup()

			if err := validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCorrectsWorkerCount(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("server.port", 8080)
	viper.Set("processing.workers", -1)

	if err := validate(); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if got := viper.GetInt("processing.workers"); got != 2 {
		t.Errorf("Expected worker count to be corrected to 2, got %d", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.SetEnvPrefix("PRESEGUIDE")
	viper.AutomaticEnv()
	os.Setenv("PRESEGUIDE_ENVIRONMENT", "staging")
	defer os.Unsetenv("PRESEGUIDE_ENVIRONMENT")

	if got := GetString("environment"); got != "staging" {
		t.Errorf("Expected environment override to staging, got %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Server:  ServerConfig{Host: "localhost", Port: 8080},
				Scoring: ScoringConfig{IdealWPMLow: 120, IdealWPMHigh: 160},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server:  ServerConfig{Host: "localhost", Port: 0},
				Scoring: ScoringConfig{IdealWPMLow: 120, IdealWPMHigh: 160},
			},
			wantErr: true,
		},
		{
			name: "inverted WPM band",
			config: &Config{
				Server:  ServerConfig{Host: "localhost", Port: 8080},
				Scoring: ScoringConfig{IdealWPMLow: 160, IdealWPMHigh: 120},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
