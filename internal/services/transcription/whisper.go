package transcription

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoSpeech is returned when the API produced an empty transcript.
var ErrNoSpeech = errors.New("no speech detected in audio")

const defaultTimeout = 2 * time.Minute

// WhisperConfig configures the Whisper client.
type WhisperConfig struct {
	APIKey      string
	Model       string
	Language    string
	Temperature float64
	Timeout     time.Duration
}

// WhisperClient implements Transcriber against the OpenAI audio API.
type WhisperClient struct {
	client      *openai.Client
	model       string
	language    string
	temperature float32
	timeout     time.Duration
}

// Ensure WhisperClient implements Transcriber interface
var _ Transcriber = (*WhisperClient)(nil)

// NewWhisperClient creates a Whisper transcription client.
func NewWhisperClient(cfg WhisperConfig) (*WhisperClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("whisper API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &WhisperClient{
		client:      openai.NewClient(cfg.APIKey),
		model:       model,
		language:    cfg.Language,
		temperature: float32(cfg.Temperature),
		timeout:     timeout,
	}, nil
}

// Transcribe sends the audio file to the API and returns the transcript.
func (c *WhisperClient) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file not accessible: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:       c.model,
		FilePath:    audioPath,
		Language:    c.language,
		Temperature: c.temperature,
		// Verbose JSON includes the audio duration, which feeds the
		// words-per-minute metric downstream.
		Format: openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("whisper transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, ErrNoSpeech
	}

	log.Printf("[DEBUG] Transcribed %s in %v (%.1fs of audio, %d chars)",
		audioPath, time.Since(start).Round(time.Millisecond), resp.Duration, len(text))

	return &Result{
		Text:     text,
		Language: resp.Language,
		Duration: resp.Duration,
	}, nil
}
