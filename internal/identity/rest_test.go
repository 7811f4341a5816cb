package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTProvider_SignIn_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"localId": "uid-123",
			"email": "user@example.com",
			"displayName": "Test User",
			"idToken": "provider-token",
			"expiresIn": "3600"
		}`))
	}))
	defer server.Close()

	p := NewRESTProvider(server.URL, "test-key")

	sess, err := p.SignIn(context.Background(), "user@example.com", "abcdef")

	require.NoError(t, err)
	assert.Equal(t, "uid-123", sess.Identity.UID)
	assert.Equal(t, "user@example.com", sess.Identity.Email)
	assert.Equal(t, "Test User", sess.Identity.DisplayName)
	assert.Equal(t, "provider-token", sess.IDToken)
	assert.False(t, sess.ExpiresAt.IsZero())
}

func TestRESTProvider_SignIn_ErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"EMAIL_NOT_FOUND"}}`))
	}))
	defer server.Close()

	p := NewRESTProvider(server.URL, "test-key")

	_, err := p.SignIn(context.Background(), "missing@example.com", "abcdef")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CodeEmailNotFound, perr.Code)
}

func TestRESTProvider_CreateAccount_ErrorWithDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signUp", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"WEAK_PASSWORD : Password should be at least 6 characters"}}`))
	}))
	defer server.Close()

	p := NewRESTProvider(server.URL, "test-key")

	_, err := p.CreateAccount(context.Background(), "user@example.com", "abc")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CodeWeakPassword, perr.Code)
	assert.Equal(t, "Password should be at least 6 characters", perr.Message)
}

func TestRESTProvider_SetDisplayName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:update", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "provider-token", body["idToken"])
		assert.Equal(t, "Jo", body["displayName"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"localId":"uid-123","email":"user@example.com","displayName":"Jo"}`))
	}))
	defer server.Close()

	p := NewRESTProvider(server.URL, "test-key")

	err := p.SetDisplayName(context.Background(), "provider-token", "Jo")

	assert.NoError(t, err)
}

func TestRESTProvider_Unreachable(t *testing.T) {
	p := NewRESTProvider("http://127.0.0.1:1", "test-key")

	_, err := p.SignIn(context.Background(), "user@example.com", "abcdef")

	require.Error(t, err)
	// Transport failures are not provider error codes.
	var perr *ProviderError
	assert.False(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "identity provider unreachable")
}
