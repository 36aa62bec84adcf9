// Package elevenlabs wraps the ElevenLabs text-to-speech endpoint used for
// phrase pronunciation audio.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/pkg/logger"
)

const defaultBaseURL = "https://api.elevenlabs.io/v1/text-to-speech/"

// Voice settings tuned for short phrase playback.
const (
	modelID         = "eleven_multilingual_v2"
	stability       = 0.35
	similarityBoost = 0.8
)

// Client manages ElevenLabs text-to-speech requests.
type Client struct {
	apiKey     string
	voiceID    string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, voiceID string) *Client {
	return &Client{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, voiceID, baseURL string) *Client {
	c := NewClient(apiKey, voiceID)
	c.baseURL = baseURL
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
	Language      string        `json:"language"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize converts the phrase text to MPEG audio bytes.
func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       stability,
			SimilarityBoost: similarityBoost,
		},
		Language: lang,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesize request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.voiceID, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesize request: %v", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Synthesize request failed: error=%v", err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperrors.NewUpstreamError(http.StatusBadGateway, "text-to-speech API unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesize response: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.GlobalLogger.Errorf("Synthesize failed: status=%s, response=%s", resp.Status, string(body))
		return nil, apperrors.NewUpstreamError(resp.StatusCode, string(body))
	}

	return body, nil
}
