package models

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// MinShareableLinkLength is the minimum accepted token length. Tokens must be
// unguessable; 16 URL-safe characters is the floor, not the target.
const MinShareableLinkLength = 16

// shareableLinkBytes of entropy yields a 43-character URL-safe token,
// infeasible to brute-force regardless of how many applications exist.
const shareableLinkBytes = 32

// NewShareableLink creates the opaque token that grants read-only access to
// one application's status page. The token is never derived from the
// application id or a timestamp.
func NewShareableLink() (string, error) {
	buf := make([]byte, shareableLinkBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate shareable link: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
