// Package checksum computes content digests used for ETags and export manifests.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ETag returns the quoted strong entity tag for data.
func ETag(data []byte) string {
	return `"` + Sum(data) + `"`
}

// View encodes a resolved view model and tags the encoded bytes. Equal
// view models always give the same tag.
func View(v any) ([]byte, string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("checksum: encode view: %w", err)
	}
	return body, ETag(body), nil
}
