package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsCredentialsAndParsesProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "sam", creds["username"])
		require.Equal(t, "hunter2", creds["password"])

		_, _ = w.Write([]byte(`{
			"user_id": 3,
			"username": "sam",
			"apps": [{"id":"celeste","name":"Celeste"}],
			"settings": {"volume": 11},
			"orgs": [{"id":1,"slug":"living-room","name":"Living Room"}],
			"token": "tok-123"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	profile, err := client.Login(context.Background(), "sam", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, 3, profile.UserID)
	assert.Equal(t, "sam", profile.Username)
	assert.Equal(t, "tok-123", profile.Token)
	assert.Equal(t, 1, profile.PrimaryOrgID())
	require.Len(t, profile.Apps, 1)
	assert.Equal(t, domain.EntryID("celeste"), profile.Apps[0].ID)
	require.Len(t, profile.Orgs, 1)
	assert.Equal(t, "member", profile.Orgs[0].Role, "missing role defaults to member")
}

func TestLoginSurfacesServiceErrorVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid username or password"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.MaxAttempts = 1

	_, err := client.Login(context.Background(), "sam", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username or password")
}

func TestSetAuthTokenAddsBearerHeader(t *testing.T) {
	var sawAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"has_users": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAuthToken("tok-123")

	hasUsers, err := client.UserPresence(context.Background())
	require.NoError(t, err)
	assert.True(t, hasUsers)
	assert.Equal(t, "Bearer tok-123", sawAuth)

	client.SetAuthToken("")
	_, err = client.UserPresence(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sawAuth)
}

func TestFetchLibraryQueriesUserAndOrg(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/3/library", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("org_id"))
		_, _ = w.Write([]byte(`[
			{"game":{"id":10,"slug":"celeste"},"install_ready":true},
			{"game":{"id":-1,"slug":"bogus"},"install_ready":true}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchLibrary(context.Background(), 3, 1)
	require.NoError(t, err)

	require.Len(t, records, 1, "records without a positive game id are skipped")
	assert.Equal(t, domain.LibraryRecord{Slug: "celeste", GameID: 10, InstallReady: true}, records[0])
}

func TestUpdateInstalledPutsFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/users/3/apps/celeste", r.URL.Path)

		var payload map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.True(t, payload["installed"])
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.UpdateInstalled(context.Background(), 3, "celeste", true))
}

func TestUpdateSettingsWrapsBlob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/3/settings", r.URL.Path)

		var payload map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "dark", payload["settings"]["theme"])
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.UpdateSettings(context.Background(), 3, map[string]any{"theme": "dark"}))
}

func TestStartPlaySessionPostsIdentifiers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sessions", r.URL.Path)

		var payload map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, 1, payload["org_id"])
		require.Equal(t, 3, payload["user_id"])
		require.Equal(t, 10, payload["game_id"])

		_, _ = w.Write([]byte(`{"id": 42, "status": "ready", "stream_url": "rtsp://node-1/42"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	session, err := client.StartPlaySession(context.Background(), 1, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 42, session.ID)
	assert.Equal(t, domain.PlaySessionReady, session.Status)
	assert.Equal(t, "rtsp://node-1/42", session.StreamURL)
}
