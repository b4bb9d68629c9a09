package server

import (
	"net/http"

	"aihustle/internal/crypto"
)

// RequireAPIKey guards next with the X-API-KEY check. digest is the value
// clients must present, normally crypto.APIKeyDigest of the shared secret.
func RequireAPIKey(digest string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !crypto.MatchAPIKey(r.Header.Get(crypto.APIKeyHeader), digest) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
