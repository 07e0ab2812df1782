// Package coach generates presentation feedback and anticipated audience
// questions through the Google Gemini API.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Generator produces text from a system instruction and a user prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string, temperature float64) (string, error)
}

// Client handles communication with the Gemini API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Ensure Client implements Generator interface
var _ Generator = (*Client)(nil)

// Config holds configuration for the Gemini client
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewClient creates a new Gemini API client
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	if cfg.Model == "" {
		cfg.Model = "gemini-pro"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate calls the generateContent endpoint and returns the first
// candidate's text.
func (c *Client) Generate(ctx context.Context, system, prompt string, temperature float64) (string, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{Temperature: temperature},
	}
	if system != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	// Create a clean context that inherits deadlines but not values/metadata
	// so request-scoped headers never propagate to the external API call.
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if genResp.Error != nil {
			log.Printf("[ERROR] Gemini API returned status %d: %s", resp.StatusCode, genResp.Error.Message)
			return "", fmt.Errorf("API error (%s): %s", genResp.Error.Status, genResp.Error.Message)
		}
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("API returned no candidates")
	}

	var text string
	for _, p := range genResp.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}
