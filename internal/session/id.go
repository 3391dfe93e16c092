package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// generateID generates a cryptographically secure session token.
// 32 bytes = 256 bits of entropy; the token is opaque to clients.
func generateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
