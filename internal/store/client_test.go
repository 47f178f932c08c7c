package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
)

func TestClientSendsSupabaseHeaders(t *testing.T) {
	var gotAPIKey, gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "service-key")
	session, err := client.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, session, "empty result set means no session")
	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "/rest/v1/sessions", gotPath)
}

func TestClientDecodesRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.s1", r.URL.Query().Get("id"))
		w.Write([]byte(`[{"id":"s1","status":"active","current_round":3}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	session, err := client.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.SessionStatusActive, session.Status)
	assert.Equal(t, 3, session.CurrentRound)
}

func TestClientSurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"duplicate key value"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	err := client.CreatePlayer(context.Background(), models.Player{Username: "alice", SessionID: "s1"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusConflict, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "duplicate key value")
	assert.Contains(t, upstream.Error(), "409")
}
