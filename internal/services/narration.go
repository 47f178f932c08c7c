package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// NarrationService turns confession text into spoken audio via an
// ElevenLabs-compatible text-to-speech API and serves the result as a static
// file.
type NarrationService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	voiceID    string
	audioDir   string
}

func NewNarrationService(apiKey, apiURL, voiceID, audioDir string) *NarrationService {
	return &NarrationService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		voiceID:    voiceID,
		audioDir:   audioDir,
	}
}

type ttsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize narrates text, writes the mp3 under a timestamped filename and
// returns the URL it will be served from.
func (s *NarrationService) Synthesize(ctx context.Context, text string) (string, error) {
	jsonBody, err := json.Marshal(ttsRequest{Text: text, ModelID: "eleven_monolingual_v1"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.apiURL + "/v1/text-to-speech/" + s.voiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read TTS response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TTS API returned status %d: %s", resp.StatusCode, string(audio))
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio dir: %w", err)
	}

	filename := fmt.Sprintf("confession_%d.mp3", time.Now().Unix())
	if err := os.WriteFile(filepath.Join(s.audioDir, filename), audio, 0o644); err != nil {
		return "", fmt.Errorf("failed to save audio file: %w", err)
	}

	return "/static/audio/" + filename, nil
}
