package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/jwt"
	authService "github.com/liggey-sinaa/attendance-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestHandler(t *testing.T) AuthHandler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := authService.NewAuthService(jwt.NewJWTService("test-secret-key-for-jwt", "1h"), "DB", string(hash))
	return NewAuthHandler(svc)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := newAuthTestHandler(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/api/v1/auth/login", map[string]string{
			"username": "DB",
			"password": "s3cret",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				AccessToken string `json:"access_token"`
				ExpiresAt   int64  `json:"expires_at"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/api/v1/auth/login", map[string]string{
			"username": "DB",
			"password": "bad",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := postJSON(t, handler.Login, "/api/v1/auth/login", map[string]string{})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
