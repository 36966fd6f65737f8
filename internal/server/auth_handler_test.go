package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/server/middleware"
)

// setupTestAuthHandler creates an AuthHandler over an in-memory store.
func setupTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	passwordConfig, err := config.NewPasswordConfig(config.AuthConfig{BcryptCost: config.MinBcryptCost})
	require.NoError(t, err)

	userSvc := NewUserService(NewMemoryStore(), passwordConfig)
	jwtSvc := setupTestJWTService(t, time.Hour)
	return NewAuthHandler(userSvc, jwtSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthHandler_InvalidJSON(t *testing.T) {
	handler := setupTestAuthHandler(t)

	for name, fn := range map[string]http.HandlerFunc{"signup": handler.Signup, "login": handler.Login} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/"+name, bytes.NewReader([]byte("invalid json")))
			w := httptest.NewRecorder()

			fn(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"invalid request body","message":"invalid request body"}`, w.Body.String())
		})
	}
}

func TestAuthHandler_Me_WithoutContextUser(t *testing.T) {
	handler := setupTestAuthHandler(t)

	w := httptest.NewRecorder()
	handler.Me(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_DeletedUser(t *testing.T) {
	handler := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	w := httptest.NewRecorder()

	handler.Me(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExtractValidationErrors(t *testing.T) {
	v := newValidator()

	type payload struct {
		DisplayName string `json:"displayName" validate:"required"`
		Untagged    string `validate:"required"`
	}

	msg := extractValidationErrors(v.Struct(payload{Untagged: "x"}))
	assert.Equal(t, "validation error: displayName - required", msg)

	msg = extractValidationErrors(v.Struct(payload{DisplayName: "x"}))
	assert.Equal(t, "validation error: Untagged - required", msg)

	assert.Equal(t, "validation error: invalid request", extractValidationErrors(assert.AnError))
}
