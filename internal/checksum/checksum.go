// Package checksum provides content digests used for record identity and
// catalog version tags.
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

// Short returns the first 12 hex characters of the digest of data. Used for
// compact version tags.
func Short(data []byte) string {
	return Sum(data)[:12]
}
