package auth

import (
	"errors"
	"testing"
)

func testIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(testSecret('a'), testSecret('r'), 10, 30)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	return issuer
}

func TestNewTokenIssuerValidation(t *testing.T) {
	cases := []struct {
		name       string
		access     string
		refresh    string
		accessMin  int
		refreshMin int
	}{
		{"zero access ttl", testSecret('a'), testSecret('r'), 0, 30},
		{"negative refresh ttl", testSecret('a'), testSecret('r'), 10, -1},
		{"refresh ttl not larger", testSecret('a'), testSecret('r'), 30, 30},
		{"bad access secret", "nope", testSecret('r'), 10, 30},
		{"bad refresh secret", testSecret('a'), "nope", 10, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTokenIssuer(tc.access, tc.refresh, tc.accessMin, tc.refreshMin); err == nil {
				t.Fatal("expected constructor error")
			}
		})
	}
}

func TestPairGrantTypeAndSubjects(t *testing.T) {
	issuer := testIssuer(t)

	pair, err := issuer.Pair("a@b.com", RoleVIP)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if pair.GrantType != GrantTypeBearer {
		t.Fatalf("unexpected grant type: %q", pair.GrantType)
	}

	access, err := issuer.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	refresh, err := issuer.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if access.Subject != "a@b.com" || refresh.Subject != "a@b.com" {
		t.Fatalf("subjects diverge: %q vs %q", access.Subject, refresh.Subject)
	}
	if access.Role() != RoleVIP || refresh.Role() != RoleVIP {
		t.Fatalf("roles diverge: %q vs %q", access.Role(), refresh.Role())
	}
}

func TestKeySeparationBetweenTokenKinds(t *testing.T) {
	issuer := testIssuer(t)

	pair, err := issuer.Pair("a@b.com", RoleNormal)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if _, err := issuer.ParseRefreshToken(pair.AccessToken); !errors.Is(err, ErrDifferentSignature) {
		t.Fatalf("access token verified with refresh key: %v", err)
	}
	if _, err := issuer.ParseAccessToken(pair.RefreshToken); !errors.Is(err, ErrDifferentSignature) {
		t.Fatalf("refresh token verified with access key: %v", err)
	}
}
