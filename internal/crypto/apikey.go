package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// APIKeyHeader carries the client's API key.
const APIKeyHeader = "X-API-KEY"

// APIKeyDigest returns the full SHA-256 hex digest of secret. Clients send
// this digest as their API key.
func APIKeyDigest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// MatchAPIKey reports whether presented equals want. An empty presented key
// never matches.
func MatchAPIKey(presented, want string) bool {
	if presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(want)) == 1
}
