package auth

import "context"

// AuthService defines console admin authentication
type AuthService interface {
	// Login checks the local admin credential and issues an access
	// token for the management endpoints.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
