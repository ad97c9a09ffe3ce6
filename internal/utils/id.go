package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// GenerateSecureToken creates a cryptographically secure random token.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

const AttachmentKeyPrefix = "attachments/"

// NewAttachmentKey returns a fresh, unguessable object key for an attachment upload.
func NewAttachmentKey() (string, error) {
	token, err := GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("generate key token: %w", err)
	}
	return fmt.Sprintf("%s%s/%s", AttachmentKeyPrefix, uuid.New(), token), nil
}
