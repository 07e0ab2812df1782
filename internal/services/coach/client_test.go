package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key", Timeout: 10 * time.Second})

	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", client.baseURL)
	assert.Equal(t, "gemini-pro", client.model)
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "analyze this talk", req.Contents[0].Parts[0].Text)
		require.NotNil(t, req.SystemInstruction)
		assert.Equal(t, "be a coach", req.SystemInstruction.Parts[0].Text)
		assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 0.001)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{
							{"text": "Here is "},
							{"text": "your feedback."},
						},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 5 * time.Second})

	text, err := client.Generate(context.Background(), "be a coach", "analyze this talk", 0.7)
	require.NoError(t, err)
	assert.Equal(t, "Here is your feedback.", text)
}

func TestGenerate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    429,
				"message": "Resource has been exhausted",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 5 * time.Second})

	_, err := client.Generate(context.Background(), "", "prompt", 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_EXHAUSTED")
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 5 * time.Second})

	_, err := client.Generate(context.Background(), "", "prompt", 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
