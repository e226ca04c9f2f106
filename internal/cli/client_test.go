package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleball-finder/internal/api/response"
)

func TestClientSendsTokenUnderAPIPrefix(t *testing.T) {
	var got *http.Request
	var body map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"n1","message":"hola","read":false}`))
	}))
	defer server.Close()

	var result response.Notification
	c := NewClient(server.URL+"/", "tok-1")
	require.NoError(t, c.Post(context.Background(), "/players/p_1/contact", map[string]string{"message": "hola"}, &result))

	assert.Equal(t, "/api/v1/players/p_1/contact", got.URL.Path)
	assert.Equal(t, "Bearer tok-1", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, userAgent, got.Header.Get("User-Agent"))
	assert.Equal(t, "hola", body["message"])
	assert.Equal(t, "n1", result.ID)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"CONTACT_NOT_ALLOWED","message":"player does not accept contact"}}`))
	}))
	defer server.Close()

	err := NewClient(server.URL, "").Get(context.Background(), "/players/p_2", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "CONTACT_NOT_ALLOWED", apiErr.Code)
	assert.Equal(t, "player does not accept contact (CONTACT_NOT_ALLOWED)", apiErr.Error())
}

func TestClientPlainErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewClient(server.URL, "").Get(context.Background(), "/health", nil)

	require.Error(t, err)
	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClientHonoursCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient(server.URL, "").Get(ctx, "/health", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenFileRoundTrip(t *testing.T) {
	c := &Config{TokenFile: filepath.Join(t.TempDir(), "nested", "token")}

	require.NoError(t, c.LoadToken())
	assert.Empty(t, c.Token)

	require.NoError(t, c.SaveToken("tok-2"))

	loaded := &Config{TokenFile: c.TokenFile}
	require.NoError(t, loaded.LoadToken())
	assert.Equal(t, "tok-2", loaded.Token)

	require.NoError(t, loaded.ClearToken())
	require.NoError(t, loaded.ClearToken())
	assert.Empty(t, loaded.Token)
	assert.NoFileExists(t, c.TokenFile)
}

func TestExplicitTokenWins(t *testing.T) {
	c := &Config{Token: "flag", TokenFile: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, c.SaveToken("saved"))

	explicit := &Config{Token: "flag", TokenFile: c.TokenFile}
	require.NoError(t, explicit.LoadToken())
	assert.Equal(t, "flag", explicit.Token)
}
