package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"walletalert/internal/log"
)

type contextKey string

const ownerContextKey contextKey = "owner_id"

// Authenticator resolves the owner identifier for a request. In normal mode
// the owner is the subject claim of a Bearer token; in dev mode a plain
// X-Owner-ID header is accepted instead so the API can be exercised without
// minting tokens.
type Authenticator struct {
	secret  []byte
	devMode bool
}

func NewAuthenticator(secret string, devMode bool) *Authenticator {
	return &Authenticator{secret: []byte(secret), devMode: devMode}
}

// Middleware authenticates the request and stores the owner identifier in
// the request context. Requests without a resolvable owner get a 401.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner, err := a.resolveOwner(r)
		if err != nil {
			log.FromContext(r.Context()).WarnContext(r.Context(), "Authentication failed",
				log.FieldPath, r.URL.Path,
				log.FieldError, err)
			w.Header().Set("WWW-Authenticate", `Bearer realm="walletalert"`)
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), ownerContextKey, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) resolveOwner(r *http.Request) (string, error) {
	if a.devMode {
		if owner := strings.TrimSpace(r.Header.Get("X-Owner-ID")); owner != "" {
			return owner, nil
		}
	}

	header := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return "", fmt.Errorf("missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	owner := strings.TrimSpace(claims.Subject)
	if owner == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return owner, nil
}

// ownerID returns the authenticated owner for the request. The auth
// middleware guarantees it is set on every /api route.
func ownerID(r *http.Request) string {
	owner, _ := r.Context().Value(ownerContextKey).(string)
	return owner
}
