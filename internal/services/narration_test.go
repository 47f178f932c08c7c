package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/voice-1", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("xi-api-key"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "I ate the last slice", req["text"])
		assert.Equal(t, "eleven_monolingual_v1", req["model_id"])

		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	audioDir := t.TempDir()
	svc := NewNarrationService("secret", srv.URL, "voice-1", audioDir)

	url, err := svc.Synthesize(context.Background(), "I ate the last slice")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/audio/confession_"), url)
	assert.True(t, strings.HasSuffix(url, ".mp3"), url)

	data, err := os.ReadFile(filepath.Join(audioDir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(data))
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer srv.Close()

	svc := NewNarrationService("bad", srv.URL, "voice-1", t.TempDir())
	_, err := svc.Synthesize(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}
