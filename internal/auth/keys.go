package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// SigningKey is symmetric HMAC key material. Two independent instances exist in
// a running process, one for access tokens and one for refresh tokens, so a
// token of one kind can never verify against the other key.
type SigningKey []byte

// hmacSHA512 needs at least a full hash block of key material.
const minKeyBytes = 64

// SigningKeyFromSecret derives a signing key from a base64-encoded secret.
// Construction happens once at startup; the key is immutable afterwards.
func SigningKeyFromSecret(secret string) (SigningKey, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("auth: signing secret is empty")
	}
	raw, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("auth: decode signing secret: %w", err)
	}
	if len(raw) < minKeyBytes {
		return nil, fmt.Errorf("auth: signing secret must decode to at least %d bytes, got %d", minKeyBytes, len(raw))
	}
	return SigningKey(raw), nil
}
