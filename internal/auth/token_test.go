package auth

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func testSecret(fill byte) string {
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{fill}, 64))
}

func testKey(t *testing.T, fill byte) SigningKey {
	t.Helper()
	key, err := SigningKeyFromSecret(testSecret(fill))
	if err != nil {
		t.Fatalf("SigningKeyFromSecret: %v", err)
	}
	return key
}

func TestSigningKeyFromSecret(t *testing.T) {
	if _, err := SigningKeyFromSecret(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := SigningKeyFromSecret("not base64 !!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	if _, err := SigningKeyFromSecret(short); err == nil {
		t.Fatal("expected error for undersized key material")
	}
	key, err := SigningKeyFromSecret(testSecret('a'))
	if err != nil {
		t.Fatalf("SigningKeyFromSecret: %v", err)
	}
	if len(key) != 64 {
		t.Fatalf("unexpected key length: %d", len(key))
	}
}

func TestCreateAndParseRoundTrip(t *testing.T) {
	key := testKey(t, 'a')

	token, err := CreateToken(key, "a@b.com", RoleNormal, 10*time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ParseToken(key, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "a@b.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role() != RoleNormal {
		t.Fatalf("unexpected role: %q", claims.Role())
	}
	if len(claims.Roles) != 1 {
		t.Fatalf("expected singleton roles, got %v", claims.Roles)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatal("expected iat and exp claims")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 10*time.Minute {
		t.Fatalf("exp-iat = %v, want 10m", got)
	}
}

func TestParseRejectsDifferentKey(t *testing.T) {
	accessKey := testKey(t, 'a')
	refreshKey := testKey(t, 'r')

	token, err := CreateToken(accessKey, "a@b.com", RoleNormal, 10*time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ParseToken(refreshKey, token); !errors.Is(err, ErrDifferentSignature) {
		t.Fatalf("expected ErrDifferentSignature, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	key := testKey(t, 'a')

	token, err := CreateToken(key, "a@b.com", RoleNormal, -1*time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ParseToken(key, token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseSignaturePrecedesExpiry(t *testing.T) {
	accessKey := testKey(t, 'a')
	refreshKey := testKey(t, 'r')

	// Expired and signed with the other key: the signature verdict wins.
	token, err := CreateToken(accessKey, "a@b.com", RoleNormal, -1*time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ParseToken(refreshKey, token); !errors.Is(err, ErrDifferentSignature) {
		t.Fatalf("expected ErrDifferentSignature, got %v", err)
	}
}

func TestParseRejectsMalformedToken(t *testing.T) {
	key := testKey(t, 'a')

	if _, err := ParseToken(key, "some malformed token here"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestParseRejectsIllegalToken(t *testing.T) {
	key := testKey(t, 'a')

	for _, input := range []string{"", "   "} {
		if _, err := ParseToken(key, input); !errors.Is(err, ErrIllegalToken) {
			t.Fatalf("ParseToken(%q): expected ErrIllegalToken, got %v", input, err)
		}
	}
}
