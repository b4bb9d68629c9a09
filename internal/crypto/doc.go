// Package crypto holds the API-key check used by the optional auth guard.
//
// The scheme is a fixed comparison: the client sends the SHA-256 hex digest
// of the shared secret in the X-API-KEY header and the server compares it in
// constant time against its own digest.
package crypto
