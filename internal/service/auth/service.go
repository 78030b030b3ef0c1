package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/auth"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwtService jwt.Service

	adminUsername     string
	adminPasswordHash string
}

func NewAuthService(jwtService jwt.Service, adminUsername, adminPasswordHash string) auth.AuthService {
	return &AuthServiceImpl{
		jwtService:        jwtService,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login implements auth.AuthService. The console has a single local
// admin credential; both failure branches collapse into the same
// error so the response never reveals which check failed.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.adminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password))
	if !usernameOK || passwordErr != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
