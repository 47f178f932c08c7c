package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
	"github.com/shreyashetty-create/WhoSaid-project/internal/testutil"
)

func newTestStore(t *testing.T) (*testutil.FakeStore, *store.Client) {
	t.Helper()
	fake := testutil.NewFakeStore()
	t.Cleanup(fake.Close)
	return fake, store.NewClient(fake.URL(), "test-key")
}

func seedSession(fake *testutil.FakeStore, id, status string, round int) {
	fake.Seed("sessions", map[string]interface{}{
		"id":            id,
		"status":        status,
		"current_round": float64(round),
	})
}

func seedConfession(fake *testutil.FakeStore, username, sessionID, text string) {
	fake.Seed("confessions", map[string]interface{}{
		"username":   username,
		"session_id": sessionID,
		"confession": text,
	})
}

// newChatServer fakes an OpenAI-compatible chat-completions endpoint that
// always replies with the given content.
func newChatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func activeConfessionService(t *testing.T, generated string) (*testutil.FakeStore, *ConfessionService) {
	t.Helper()
	fake, st := newTestStore(t)
	sessions := NewSessionService(st)
	chat := newChatServer(t, generated)
	generator := NewAIConfessionService("test-key", chat.URL, "gpt-3.5-turbo")
	return fake, NewConfessionService(st, sessions, generator)
}
