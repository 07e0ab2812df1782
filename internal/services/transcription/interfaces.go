// Package transcription converts recorded audio into text via the OpenAI
// Whisper API.
package transcription

import "context"

// Result is the output of a transcription call.
type Result struct {
	Text     string
	Language string
	// Duration is the audio length in seconds as reported by the API.
	Duration float64
}

// Transcriber converts an audio file into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
