package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tinselworks/noel/internal/ctxkeys"
	"github.com/tinselworks/noel/internal/service"
)

// TokenVerifier is the sliver of the auth service the gate needs: a pure
// signature-plus-expiry check with no session state.
type TokenVerifier interface {
	VerifyToken(token string) (*service.Identity, error)
}

// bearerToken extracts the credential from the Authorization header. The
// second return reports whether a credential was presented at all.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == header || token == "" {
		// Header present but not a bearer scheme; treat as presented-but-bad.
		return "", true
	}
	return token, true
}

// RequireAuth admits only requests with a valid token. A missing credential
// answers 401; a presented but invalid or expired one answers 403.
func RequireAuth(verifier TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, presented := bearerToken(r)
			if !presented {
				reject(w, http.StatusUnauthorized, "authentication required")
				return
			}

			identity, err := verifier.VerifyToken(token)
			if err != nil {
				reject(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := ctxkeys.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// OptionalAuth attaches an identity when a valid token is presented and
// otherwise lets the request through anonymously. It never rejects.
func OptionalAuth(verifier TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, presented := bearerToken(r)
			if !presented {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := verifier.VerifyToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// reject writes the uniform error envelope without importing the handler
// package (which would cycle back into middleware).
func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}
