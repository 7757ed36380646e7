package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// APIKeyDigest computes the SHA-256 digest of a plaintext API key and
// returns it as a hex-encoded string.
//
// The digest is deterministic and unsalted: the same plaintext always
// produces the same digest, which is what allows credential verification
// to be a single exact-match database lookup on the stored column.
//
// Parameters:
//
//	plaintext - the raw API key as presented by the client
//
// Returns:
//
//	string - 64-character hex-encoded SHA-256 digest
//
// Example usage:
//
//	digest := utils.APIKeyDigest("8f14e45f-ceea-4e67-a1b4-97b69cdcf1f3")
func APIKeyDigest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// NewAPIKey generates a fresh plaintext API key.
//
// The key is an opaque UUID string; only its digest is ever persisted, so
// the returned value must be handed to the client immediately — it cannot
// be recovered afterwards.
func NewAPIKey() string {
	return uuid.NewString()
}
