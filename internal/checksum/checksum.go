package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Short truncates a digest to 8 characters, enough to tell document
// revisions apart in logs.
func Short(sum string) string {
	if len(sum) <= 8 {
		return sum
	}
	return sum[:8]
}
