package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

type contextKey struct{}

var identityKey = contextKey{}

// IdentityFrom returns the authenticated identity stored by Authenticator.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}

// Authenticator rejects requests without a valid Bearer session token before
// any entity lookup happens, and stores the resolved identity in the request
// context for the permission checks downstream.
func Authenticator(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondUnauthorized(w)
				return
			}

			identity, err := svc.Authenticate(r.Context(), token)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("authentication failed")
				respondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission gates a route on a permission codename. With enforcement
// disabled it only requires that Authenticator ran, matching the historical
// unguarded variants of this application.
func RequirePermission(codename string, enforce bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				respondUnauthorized(w)
				return
			}
			if enforce && !identity.Can(codename) {
				log.Warn().
					Str("username", identity.Account.Username).
					Str("permission", codename).
					Str("path", r.URL.Path).
					Msg("permission denied")
				respondForbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (uuid.UUID, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return uuid.Nil, false
	}
	token, err := uuid.FromString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return uuid.Nil, false
	}
	return token, true
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"authentication required"}`))
}

func respondForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"permission denied"}`))
}
