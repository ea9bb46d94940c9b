package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var signingMethod = jwt.SigningMethodHS512

// Claims is the payload embedded in every signed token. The subject is the
// principal's email; roles carries exactly one role at mint time although the
// shape permits a set.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Role returns the first role carried by the claims, or "" when absent.
func (c *Claims) Role() string {
	if len(c.Roles) == 0 {
		return ""
	}
	return c.Roles[0]
}

// CreateToken builds and signs a token for subject with expiry now+ttl.
func CreateToken(key SigningKey, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Roles: []string{role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature against key, checks expiry and decodes the
// claims. Exactly one of ErrTokenMalformed, ErrDifferentSignature,
// ErrTokenExpired or ErrIllegalToken comes back on failure; the underlying
// library's error taxonomy never leaks past this function.
func ParseToken(key SigningKey, token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrIllegalToken
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(t *jwt.Token) (any, error) { return []byte(key), nil },
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrIllegalToken
	}
	return claims, nil
}

// classifyParseError maps the jwt/v5 error set onto the fixed taxonomy.
// Structural problems win over signature problems, signature problems win over
// expiry: an expired token presented with the wrong key reports the signature.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrDifferentSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrIllegalToken
	}
}
