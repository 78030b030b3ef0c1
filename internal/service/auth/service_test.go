package auth

import (
	"context"
	"testing"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/auth"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(jwt.NewJWTService("test-signing-key", "1h"), "DB", string(hash))
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Username: "DB",
			Password: "s3cret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Username: "DB",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Username: "intruder",
			Password: "s3cret",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
