package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
	"github.com/shreyashetty-create/WhoSaid-project/internal/testutil"
)

const generatedConfession = "I still sleep with a nightlight."

type testEnv struct {
	fake     *testutil.FakeStore
	router   *gin.Engine
	audioDir string
}

// newTestEnv stands up the production route table over a fake store, a fake
// chat-completions API and a fake TTS API.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := testutil.NewFakeStore()
	t.Cleanup(fake.Close)

	chat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": generatedConfession}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(chat.Close)

	tts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3-bytes"))
	}))
	t.Cleanup(tts.Close)

	st := store.NewClient(fake.URL(), "test-key")
	scoring := services.NewScoringService()
	sessions := services.NewSessionService(st)
	players := services.NewPlayerService(st)
	generator := services.NewAIConfessionService("key", chat.URL, "gpt-3.5-turbo")
	confessions := services.NewConfessionService(st, sessions, generator)
	guesses := services.NewGuessService(st, sessions, scoring)
	leaderboard := services.NewLeaderboardService(st)
	audioDir := t.TempDir()
	narration := services.NewNarrationService("key", tts.URL, "voice-1", audioDir)

	r := gin.New()
	Register(
		r,
		NewSessionHandler(sessions),
		NewPlayerHandler(players),
		NewConfessionHandler(confessions),
		NewGuessHandler(guesses),
		NewLeaderboardHandler(leaderboard),
		NewAudioHandler(narration),
	)

	return &testEnv{fake: fake, router: r, audioDir: audioDir}
}

func (e *testEnv) seedSession(id, status string, round int) {
	e.fake.Seed("sessions", map[string]interface{}{
		"id":            id,
		"status":        status,
		"current_round": float64(round),
	})
}

func (e *testEnv) seedConfession(username, sessionID, text string) {
	e.fake.Seed("confessions", map[string]interface{}{
		"username":   username,
		"session_id": sessionID,
		"confession": text,
	})
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
