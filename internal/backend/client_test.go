package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.BackendConfig{URL: srv.URL, AnonKey: "anon", Timeout: 5 * time.Second})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(config.BackendConfig{})
	_, err := c.Links().List(context.Background(), LinkFilter{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Headers(t *testing.T) {
	var gotAuth, gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		writeJSON(t, w, http.StatusOK, []DocumentLink{})
	})

	_, err := c.Links().List(context.Background(), LinkFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer anon", gotAuth)
	assert.Equal(t, "anon", gotKey)

	_, err = c.WithToken("user-token").Links().List(context.Background(), LinkFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer user-token", gotAuth)
	assert.False(t, c.Authenticated(), "WithToken must not mutate the receiver")
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"rest message", http.StatusBadRequest, `{"message":"invalid input syntax"}`, "invalid input syntax"},
		{"auth description", http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, "Invalid login credentials"},
		{"plain text", http.StatusBadGateway, `upstream down`, "upstream down"},
		{"empty body", http.StatusServiceUnavailable, ``, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Links().List(context.Background(), LinkFilter{})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestSignIn(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "hunter2" {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"error_description": "Invalid login credentials"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "tok",
			"refresh_token": "ref",
			"expires_in":    3600,
			"user":          map[string]string{"id": "u1", "email": body["email"]},
		})
	})

	s, err := c.SignIn(context.Background(), Credentials{Email: "ana@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "tok", s.AccessToken)
	assert.Equal(t, "ana@example.com", s.User.Email)
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(time.Now().Add(2*time.Hour)))

	_, err = c.SignIn(context.Background(), Credentials{Email: "ana@example.com", Password: "wrong"})
	assert.True(t, IsStatus(err, http.StatusBadRequest))
}

func TestSignIn_ValidatesBeforeRequest(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.SignIn(context.Background(), Credentials{Email: "not-an-email"})
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
	assert.Zero(t, calls.Load())
}

func TestSessionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	_, err := LoadSession(path)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	want := Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour).Unix(), User: SessionUser{Email: "ana@example.com"}}
	require.NoError(t, SaveSession(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadSession(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	expired := want
	expired.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	require.NoError(t, SaveSession(path, expired))
	_, err = LoadSession(path)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, ClearSession(path))
	require.NoError(t, ClearSession(path), "clearing twice is fine")
}

func TestAsk(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/"+QueryFunction, r.URL.Path)
		var q Question
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		writeJSON(t, w, http.StatusOK, Answer{Answer: "3 applicants on " + q.RFPID})
	})

	a, err := c.Ask(context.Background(), Question{Question: "how many applicants?", RFPID: "RFP-001"})
	require.NoError(t, err)
	assert.Equal(t, "3 applicants on RFP-001", a.Answer)

	_, err = c.Ask(context.Background(), Question{})
	assert.Error(t, err)
}
