// Package cryptox holds helpers for handling the upload secret without
// leaking it into logs or memory longer than needed.
package cryptox

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintLen is the number of digest bytes kept in a fingerprint.
const fingerprintLen = 6

// Fingerprint returns a short, stable, non-reversible tag for secret that is
// safe to put in log lines. The empty secret yields "".
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:fingerprintLen])
}

// Wipe overwrites b with zeros. A nil slice is ignored.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
