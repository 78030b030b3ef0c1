package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/auth"
	"github.com/liggey-sinaa/attendance-backend-go/internal/handler/http/response"
)

// AuthRequired gates the console routes behind a verified access
// token. The jwtauth.Verifier middleware must run first; this only
// inspects what it put on the context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Only console access tokens pass; anything else signed
			// with the same key is rejected.
			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
