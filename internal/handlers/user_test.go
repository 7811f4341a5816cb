package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/partyspace/partyspace-api/internal/session"
	"github.com/partyspace/partyspace-api/pkg/dto"
	"github.com/partyspace/partyspace-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetMe_Success(t *testing.T) {
	mockSessions := new(testutil.MockSessionManager)
	handler := NewUserHandler(mockSessions)

	mockSessions.On("Snapshot").Return(authenticatedSnapshot())

	app := drift.New()
	app.Get("/users/me", handler.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "uid-123", response.UID)
	assert.Equal(t, "test@example.com", response.Email)
	assert.Equal(t, "2025-01-02T03:04:05Z", response.CreatedAt)
}

func TestUserHandler_GetMe_NotAuthenticated(t *testing.T) {
	mockSessions := new(testutil.MockSessionManager)
	handler := NewUserHandler(mockSessions)

	mockSessions.On("Snapshot").Return(session.Snapshot{State: session.StateAnonymous})

	app := drift.New()
	app.Get("/users/me", handler.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not authenticated")
}
