package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns a stable hex digest, used to mint job ids for
// providers that expose no natural identifier.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
